package pagination

// Pagination is one page of results plus the total number of matches.
type Pagination[T any] struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	Items       []T   `json:"items"`
}

// New creates a page. A nil items slice is replaced by an empty one.
func New[T any](currentPage, perPage int, total int64, items []T) Pagination[T] {
	if items == nil {
		items = []T{}
	}
	return Pagination[T]{
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
		Items:       items,
	}
}

// Map converts the items of a page, keeping its counters.
func Map[T, R any](p Pagination[T], fn func(T) R) Pagination[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return New(p.CurrentPage, p.PerPage, p.Total, items)
}
