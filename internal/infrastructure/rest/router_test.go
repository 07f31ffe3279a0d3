package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	castmemberapp "github.com/narwhalmedia/catalog/internal/application/castmember"
	categoryapp "github.com/narwhalmedia/catalog/internal/application/category"
	genreapp "github.com/narwhalmedia/catalog/internal/application/genre"
	videoapp "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/internal/infrastructure/rest"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	categories  *mocks.CategoryGateway
	genres      *mocks.GenreGateway
	castMembers *mocks.CastMemberGateway
	videos      *mocks.VideoGateway
	publisher   *mocks.Publisher
	pingErr     error
	router      http.Handler
}

func (suite *RouterTestSuite) SetupTest() {
	suite.categories = new(mocks.CategoryGateway)
	suite.genres = new(mocks.GenreGateway)
	suite.castMembers = new(mocks.CastMemberGateway)
	suite.videos = new(mocks.VideoGateway)
	suite.publisher = new(mocks.Publisher)
	suite.pingErr = nil

	log := logger.NewNoop()
	metrics := rest.NewMetrics()
	defaults := rest.ListDefaults{PerPage: 10, MaxPerPage: 100}

	handlers := rest.Handlers{
		Categories: rest.NewCategoryHandler(
			categoryapp.NewService(suite.categories, suite.publisher, log), defaults, metrics),
		Genres: rest.NewGenreHandler(
			genreapp.NewService(suite.genres, suite.categories, suite.publisher, log), defaults, metrics),
		CastMembers: rest.NewCastMemberHandler(
			castmemberapp.NewService(suite.castMembers, suite.publisher, log), defaults, metrics),
		Videos: rest.NewVideoHandler(
			videoapp.NewService(suite.videos, suite.categories, suite.genres, suite.castMembers, suite.publisher, log),
			defaults, metrics),
	}
	ping := func(context.Context) error { return suite.pingErr }

	suite.router = rest.NewRouter(handlers, metrics, "/metrics", ping, log)
}

func (suite *RouterTestSuite) TearDownTest() {
	suite.categories.AssertExpectations(suite.T())
	suite.genres.AssertExpectations(suite.T())
	suite.castMembers.AssertExpectations(suite.T())
	suite.videos.AssertExpectations(suite.T())
}

func (suite *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *RouterTestSuite) TestCreateCategory() {
	suite.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *category.Category) bool {
		return c.Name() == "Movies" && c.IsActive()
	})).Return(func(_ context.Context, c *category.Category) *category.Category { return c }, nil)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	rec := suite.do(http.MethodPost, "/categories", `{"name":"Movies","description":"Most watched"}`)

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	assert.Equal(suite.T(), "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(suite.T(), decodeBody(suite.T(), rec)["id"])
}

func (suite *RouterTestSuite) TestCreateCategory_ValidationFailure() {
	rec := suite.do(http.MethodPost, "/categories", `{"name":"   "}`)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(suite.T(), rec)
	assert.Equal(suite.T(), "Could not create Aggregate Category", body["message"])
	assert.Equal(suite.T(), []any{map[string]any{"message": "'name' should not be empty"}}, body["errors"])

	metrics := suite.do(http.MethodGet, "/metrics", "")
	assert.Contains(suite.T(), metrics.Body.String(), `catalog_validation_failures_total{resource="categories"} 1`)
}

func (suite *RouterTestSuite) TestCreateCategory_MalformedBody() {
	rec := suite.do(http.MethodPost, "/categories", `{"name":`)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(suite.T(), "malformed request body", decodeBody(suite.T(), rec)["message"])
}

func (suite *RouterTestSuite) TestGetCategory_NotFound() {
	suite.categories.On("FindByID", mock.Anything, category.ID("missing")).
		Return(nil, domain.NewNotFoundError(category.AggregateName, "missing"))

	rec := suite.do(http.MethodGet, "/categories/missing", "")

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Equal(suite.T(), "Category with ID missing was not found", decodeBody(suite.T(), rec)["message"])
}

func (suite *RouterTestSuite) TestGetCategory() {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := category.Rehydrate("c1", "Movies", "Most watched", true, now, now, nil)
	suite.categories.On("FindByID", mock.Anything, category.ID("c1")).Return(stored, nil)

	rec := suite.do(http.MethodGet, "/categories/c1", "")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	body := decodeBody(suite.T(), rec)
	assert.Equal(suite.T(), "Movies", body["name"])
	assert.Equal(suite.T(), true, body["is_active"])
	assert.Equal(suite.T(), "2024-01-02T03:04:05Z", body["created_at"])
	assert.Nil(suite.T(), body["deleted_at"])
}

func (suite *RouterTestSuite) TestListCategories_ClampsPerPage() {
	expected := pagination.NewSearchQuery(2, 100, "act", "name", pagination.Desc)
	suite.categories.On("FindAll", mock.Anything, expected).
		Return(pagination.New[*category.Category](2, 100, 0, nil), nil)

	rec := suite.do(http.MethodGet, "/categories?search=act&page=2&perPage=500&dir=desc", "")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	body := decodeBody(suite.T(), rec)
	assert.EqualValues(suite.T(), 2, body["current_page"])
	assert.EqualValues(suite.T(), 100, body["per_page"])
	assert.EqualValues(suite.T(), 0, body["total"])
	assert.Equal(suite.T(), []any{}, body["items"])
}

func (suite *RouterTestSuite) TestListCategories_GatewayFailureIsHidden() {
	suite.categories.On("FindAll", mock.Anything, mock.Anything).
		Return(pagination.Pagination[*category.Category]{}, errors.New("connection refused"))

	rec := suite.do(http.MethodGet, "/categories", "")

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.Equal(suite.T(), "internal server error", decodeBody(suite.T(), rec)["message"])
	assert.NotContains(suite.T(), rec.Body.String(), "connection refused")
}

func (suite *RouterTestSuite) TestDeleteCastMember() {
	suite.castMembers.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	rec := suite.do(http.MethodDelete, "/cast_members/M1", "")

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	assert.Empty(suite.T(), rec.Body.String())
	suite.castMembers.AssertCalled(suite.T(), "DeleteByID", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestCreateGenre_MissingCategories() {
	suite.categories.On("ExistsByIDs", mock.Anything, []category.ID{"c1", "c2"}).
		Return([]category.ID{"c1"}, nil)

	rec := suite.do(http.MethodPost, "/genres", `{"name":"Action","categories_id":["c1","c2"]}`)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(suite.T(), rec)
	assert.Equal(suite.T(), []any{map[string]any{"message": "Some categories could not be found: c2"}}, body["errors"])
}

func (suite *RouterTestSuite) TestCreateGenre_BlankReferenceIsBadRequest() {
	rec := suite.do(http.MethodPost, "/genres", `{"name":"Action","categories_id":["  "]}`)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *RouterTestSuite) TestUpdateGenre() {
	now := time.Now().UTC()
	stored := genre.Rehydrate("g1", "Action", true, nil, now, now, nil)
	suite.genres.On("FindByID", mock.Anything, genre.ID("g1")).Return(stored, nil)
	suite.genres.On("Update", mock.Anything, mock.MatchedBy(func(g *genre.Genre) bool {
		return g.Name() == "Drama" && !g.IsActive()
	})).Return(func(_ context.Context, g *genre.Genre) *genre.Genre { return g }, nil)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	rec := suite.do(http.MethodPut, "/genres/g1", `{"name":"Drama","is_active":false}`)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "g1", decodeBody(suite.T(), rec)["id"])
}

func (suite *RouterTestSuite) TestGetVideo() {
	title := "System Design"
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := video.Rehydrate("v1", video.Props{
		Title:       &title,
		Description: "desc",
		LaunchedAt:  2022,
		Duration:    90,
		Rating:      video.RatingL,
		Categories:  []category.ID{"c1"},
	}, video.Media{Banner: &video.ImageMedia{Checksum: "abc", Name: "banner.png", Location: "/images"}}, now, now)
	suite.videos.On("FindByID", mock.Anything, video.ID("v1")).Return(stored, nil)

	rec := suite.do(http.MethodGet, "/videos/v1", "")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	body := decodeBody(suite.T(), rec)
	assert.EqualValues(suite.T(), 2022, body["year_launched"])
	assert.Equal(suite.T(), string(video.RatingL), body["rating"])
	assert.Equal(suite.T(), []any{"c1"}, body["categories_id"])
	assert.Equal(suite.T(), "banner.png", body["banner"].(map[string]any)["name"])
	assert.Nil(suite.T(), body["trailer"])
}

func (suite *RouterTestSuite) TestListVideos_DefaultsToTitle() {
	expected := pagination.NewSearchQuery(0, 10, "", "title", pagination.Asc)
	suite.videos.On("FindAll", mock.Anything, expected).
		Return(pagination.New[*video.Video](0, 10, 0, nil), nil)

	rec := suite.do(http.MethodGet, "/videos", "")

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *RouterTestSuite) TestHealthz() {
	rec := suite.do(http.MethodGet, "/healthz", "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	suite.pingErr = errors.New("dial tcp: refused")
	rec = suite.do(http.MethodGet, "/healthz", "")
	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
	assert.Equal(suite.T(), "database unreachable", decodeBody(suite.T(), rec)["error"])
}

func (suite *RouterTestSuite) TestMetricsUseRoutePattern() {
	suite.categories.On("FindByID", mock.Anything, category.ID("abc")).
		Return(nil, domain.NewNotFoundError(category.AggregateName, "abc"))

	suite.do(http.MethodGet, "/categories/abc", "")
	rec := suite.do(http.MethodGet, "/metrics", "")

	assert.Contains(suite.T(), rec.Body.String(), `route="/categories/{id}"`)
	assert.NotContains(suite.T(), rec.Body.String(), `/categories/abc`)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
