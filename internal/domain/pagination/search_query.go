package pagination

import (
	"math"
	"strings"
)

// Direction is the sort direction of a search.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps free text to a Direction, defaulting to Asc.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(strings.TrimSpace(raw), string(Desc)) {
		return Desc
	}
	return Asc
}

// SearchQuery describes one page of a filtered, sorted listing.
type SearchQuery struct {
	Page      int
	PerPage   int
	Terms     string
	Sort      string
	Direction Direction
}

// NewSearchQuery builds a normalized query. Negative page values are clamped to zero.
func NewSearchQuery(page, perPage int, terms, sort string, direction Direction) SearchQuery {
	if page < 0 {
		page = 0
	}
	if perPage < 0 {
		perPage = 0
	}
	if direction != Desc {
		direction = Asc
	}
	return SearchQuery{
		Page:      page,
		PerPage:   perPage,
		Terms:     strings.TrimSpace(terms),
		Sort:      strings.TrimSpace(sort),
		Direction: direction,
	}
}

// Offset returns the number of rows preceding the page, saturating at math.MaxInt.
func (q SearchQuery) Offset() int {
	if q.PerPage > 0 && q.Page > math.MaxInt/q.PerPage {
		return math.MaxInt
	}
	return q.Page * q.PerPage
}

// PastEnd reports whether the page starts after the last of total rows.
func (q SearchQuery) PastEnd(total int64) bool {
	if q.PerPage == 0 || total <= 0 {
		return true
	}
	return int64(q.Page) > (total-1)/int64(q.PerPage)
}
