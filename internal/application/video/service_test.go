package video_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	app "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/mocks"
)

type VideoServiceTestSuite struct {
	suite.Suite
	videos      *mocks.VideoGateway
	categories  *mocks.CategoryGateway
	genres      *mocks.GenreGateway
	castMembers *mocks.CastMemberGateway
	publisher   *mocks.Publisher
	service     *app.Service
	ctx         context.Context
}

func (suite *VideoServiceTestSuite) SetupTest() {
	suite.videos = new(mocks.VideoGateway)
	suite.categories = new(mocks.CategoryGateway)
	suite.genres = new(mocks.GenreGateway)
	suite.castMembers = new(mocks.CastMemberGateway)
	suite.publisher = new(mocks.Publisher)
	suite.service = app.NewService(
		suite.videos, suite.categories, suite.genres, suite.castMembers,
		suite.publisher, logger.NewNoop(),
	)
	suite.ctx = context.Background()
}

func (suite *VideoServiceTestSuite) TearDownTest() {
	suite.videos.AssertExpectations(suite.T())
	suite.categories.AssertExpectations(suite.T())
	suite.genres.AssertExpectations(suite.T())
	suite.castMembers.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func ptr(s string) *string { return &s }

func returnArg(_ context.Context, v *video.Video) *video.Video { return v }

func validCreate() app.CreateVideoCommand {
	return app.CreateVideoCommand{
		Title:       ptr("System Design Interviews"),
		Description: "A very long description",
		LaunchedAt:  2022,
		Duration:    120.10,
		Rating:      "L",
		Categories:  []string{"c1"},
		Genres:      []string{"g1"},
		CastMembers: []string{"m1"},
	}
}

func (suite *VideoServiceTestSuite) expectAllReferencesExist() {
	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{"c1"}).Return([]category.ID{"c1"}, nil).Once()
	suite.genres.On("ExistsByIDs", suite.ctx, []genre.ID{"g1"}).Return([]genre.ID{"g1"}, nil).Once()
	suite.castMembers.On("ExistsByIDs", suite.ctx, []castmember.ID{"m1"}).Return([]castmember.ID{"m1"}, nil).Once()
}

func (suite *VideoServiceTestSuite) TestCreate() {
	// Arrange
	suite.expectAllReferencesExist()
	suite.videos.On("Create", suite.ctx, mock.MatchedBy(func(v *video.Video) bool {
		return v.Title() == "System Design Interviews" && v.Rating() == video.RatingL
	})).Return(returnArg, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e events.CatalogEvent) bool {
		return e.AggregateType == events.AggregateVideo && e.Action == events.ActionCreated
	})).Return(nil).Once()

	// Act
	out, err := suite.service.Create(suite.ctx, validCreate())

	// Assert
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), out.ID)
}

func (suite *VideoServiceTestSuite) TestCreate_ReferenceErrorsPrecedeFieldErrors() {
	// Arrange
	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{"c1", "c2"}).Return([]category.ID{"c2"}, nil).Once()
	suite.genres.On("ExistsByIDs", suite.ctx, []genre.ID{"g1"}).Return([]genre.ID{}, nil).Once()
	suite.castMembers.On("ExistsByIDs", suite.ctx, []castmember.ID{"m1"}).Return([]castmember.ID{}, nil).Once()

	cmd := validCreate()
	cmd.Title = nil
	cmd.Rating = "unknown"
	cmd.Categories = []string{"c1", "c2", "c1"}

	// Act
	out, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	assert.Nil(suite.T(), out)
	var notificationErr *validation.NotificationError
	require.ErrorAs(suite.T(), err, &notificationErr)
	assert.Equal(suite.T(), "Could not create Aggregate Video", notificationErr.Error())
	assert.Equal(suite.T(), []validation.Error{
		{Message: "Some categories could not be found: c1"},
		{Message: "Some genres could not be found: g1"},
		{Message: "Some cast members could not be found: m1"},
		{Message: "'title' should not be null"},
		{Message: "'rating' should not be null"},
	}, notificationErr.Errors())
	suite.videos.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestCreate_GatewayFailureWhileCheckingReferences() {
	boom := errors.New("connection reset")
	suite.categories.On("ExistsByIDs", suite.ctx, []category.ID{"c1"}).Return(nil, boom).Once()

	_, err := suite.service.Create(suite.ctx, validCreate())

	require.ErrorIs(suite.T(), err, boom)
	var notificationErr *validation.NotificationError
	assert.False(suite.T(), errors.As(err, &notificationErr))
}

func (suite *VideoServiceTestSuite) TestCreate_BlankReferenceIsRejected() {
	cmd := validCreate()
	cmd.Genres = []string{" "}

	_, err := suite.service.Create(suite.ctx, cmd)

	require.ErrorIs(suite.T(), err, domain.ErrInvalidIdentifier)
}

func (suite *VideoServiceTestSuite) TestCreate_PublishFailureIsNotReturned() {
	suite.expectAllReferencesExist()
	suite.videos.On("Create", suite.ctx, mock.Anything).Return(returnArg, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(errors.New("broker down")).Once()

	out, err := suite.service.Create(suite.ctx, validCreate())

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), out.ID)
}

func (suite *VideoServiceTestSuite) TestUpdate_KeepsMedia() {
	// Arrange
	restore := domain.SetClock(domain.ClockFunc(func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	defer restore()

	existing := video.Rehydrate("v1", video.Props{
		Title:       ptr("Old"),
		Description: "Old description",
		LaunchedAt:  2020,
		Rating:      video.RatingAge14,
	}, video.Media{
		Banner: &video.ImageMedia{Checksum: "abc", Name: "banner.png", Location: "/banner.png"},
	}, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.videos.On("FindByID", suite.ctx, video.ID("v1")).Return(existing, nil).Once()
	suite.expectAllReferencesExist()
	suite.videos.On("Update", suite.ctx, mock.MatchedBy(func(v *video.Video) bool {
		return v.Title() == "New" &&
			v.Media().Banner != nil &&
			v.UpdatedAt().After(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return(returnArg, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e events.CatalogEvent) bool {
		return e.AggregateID == "v1" && e.Action == events.ActionUpdated
	})).Return(nil).Once()

	// Act
	out, err := suite.service.Update(suite.ctx, app.UpdateVideoCommand{
		ID:          "v1",
		Title:       ptr("New"),
		Description: "New description",
		LaunchedAt:  2021,
		Rating:      "14",
		Categories:  []string{"c1"},
		Genres:      []string{"g1"},
		CastMembers: []string{"m1"},
	})

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "v1", out.ID)
}

func (suite *VideoServiceTestSuite) TestUpdate_Invalid() {
	existing, err := video.New(video.Props{Title: ptr("Old"), Description: "Old description", LaunchedAt: 2020, Rating: video.RatingER})
	require.NoError(suite.T(), err)
	suite.videos.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil).Once()

	_, err = suite.service.Update(suite.ctx, app.UpdateVideoCommand{
		ID:          existing.ID().String(),
		Title:       ptr(""),
		Description: "Old description",
		LaunchedAt:  2020,
		Rating:      "ER",
	})

	var notificationErr *validation.NotificationError
	require.ErrorAs(suite.T(), err, &notificationErr)
	assert.Equal(suite.T(), "Could not update Aggregate Video "+existing.ID().String(), notificationErr.Error())
	assert.Equal(suite.T(), []validation.Error{{Message: "'title' should not be empty"}}, notificationErr.Errors())
	assert.Equal(suite.T(), "Old", existing.Title())
}

func (suite *VideoServiceTestSuite) TestUpdate_NotFound() {
	suite.videos.On("FindByID", suite.ctx, video.ID("missing")).
		Return(nil, domain.NewNotFoundError(video.AggregateName, "missing")).Once()

	_, err := suite.service.Update(suite.ctx, app.UpdateVideoCommand{ID: "missing", Title: ptr("x")})

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, domain.ErrNotFound)
	assert.Contains(suite.T(), err.Error(), "Video with ID missing was not found")
}

func (suite *VideoServiceTestSuite) TestGetByID() {
	v, err := video.New(video.Props{Title: ptr("Title"), Description: "Description", LaunchedAt: 2020, Rating: video.RatingAge18})
	require.NoError(suite.T(), err)
	suite.videos.On("FindByID", suite.ctx, v.ID()).Return(v, nil).Once()

	out, err := suite.service.GetByID(suite.ctx, v.ID().String())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Title", out.Title)
	assert.Equal(suite.T(), "AGE_18", out.Rating)
	assert.Empty(suite.T(), out.Categories)
	assert.Nil(suite.T(), out.Video)
}

func (suite *VideoServiceTestSuite) TestDeleteByID_PublishesEvenWhenAbsent() {
	suite.videos.On("DeleteByID", suite.ctx, video.ID("gone")).Return(nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e events.CatalogEvent) bool {
		return e.Action == events.ActionDeleted
	})).Return(nil).Once()

	require.NoError(suite.T(), suite.service.DeleteByID(suite.ctx, "gone"))
}

func (suite *VideoServiceTestSuite) TestList() {
	v, err := video.New(video.Props{Title: ptr("Title"), Description: "Description", LaunchedAt: 2020, Rating: video.RatingL})
	require.NoError(suite.T(), err)
	query := pagination.NewSearchQuery(0, 10, "tit", "title", pagination.Asc)
	suite.videos.On("FindAll", suite.ctx, query).
		Return(pagination.New(0, 10, 1, []*video.Video{v}), nil).Once()

	page, err := suite.service.List(suite.ctx, query)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), page.Total)
	require.Len(suite.T(), page.Items, 1)
	assert.Equal(suite.T(), "Title", page.Items[0].Title)
}

func TestVideoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VideoServiceTestSuite))
}
