package rest

import (
	"net/http"
	"strconv"

	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

// ListDefaults are applied to list parameters left out of a request.
type ListDefaults struct {
	PerPage    int
	MaxPerPage int
}

// searchQuery reads search, page, perPage, sort and dir. Unparsable numbers
// fall back to the defaults; perPage is capped at MaxPerPage.
func (d ListDefaults) searchQuery(r *http.Request, defaultSort string) pagination.SearchQuery {
	q := r.URL.Query()

	page := intParam(q.Get("page"), 0)
	perPage := intParam(q.Get("perPage"), d.PerPage)
	if d.MaxPerPage > 0 && perPage > d.MaxPerPage {
		perPage = d.MaxPerPage
	}

	sort := q.Get("sort")
	if sort == "" {
		sort = defaultSort
	}

	return pagination.NewSearchQuery(page, perPage, q.Get("search"), sort, pagination.ParseDirection(q.Get("dir")))
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
