package persistence

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPlan describes how one table is filtered and sorted.
type searchPlan struct {
	// columns matched case-insensitively against the terms
	columns []string
	// sortable maps accepted sort keys to column names
	sortable    map[string]string
	defaultSort string
}

func (s searchPlan) filter(db *gorm.DB, terms string) *gorm.DB {
	if terms == "" {
		return db
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(terms)) + "%"
	conditions := make([]string, len(s.columns))
	args := make([]any, len(s.columns))
	for i, column := range s.columns {
		conditions[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column)
		args[i] = pattern
	}
	return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

func (s searchPlan) order(db *gorm.DB, q pagination.SearchQuery) *gorm.DB {
	column, ok := s.sortable[q.Sort]
	if !ok {
		column = s.defaultSort
	}
	desc := q.Direction == pagination.Desc
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
}

// findPage counts and loads one page of M. Only the count runs when PerPage is
// zero or the page lies past the last row.
func findPage[M any](ctx context.Context, db *gorm.DB, q pagination.SearchQuery, plan searchPlan, preloads ...string) ([]M, int64, error) {
	var total int64
	if err := plan.filter(db.WithContext(ctx).Model(new(M)), q.Terms).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting: %w", err)
	}
	if q.PastEnd(total) {
		return nil, total, nil
	}

	query := preloadLinks(plan.filter(db.WithContext(ctx).Model(new(M)), q.Terms), preloads...)

	var rows []M
	if err := plan.order(query, q).Offset(q.Offset()).Limit(q.PerPage).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("listing: %w", err)
	}
	return rows, total, nil
}

// preloadLinks loads each join association in stored position order.
func preloadLinks(db *gorm.DB, associations ...string) *gorm.DB {
	for _, association := range associations {
		db = db.Preload(association, byPosition)
	}
	return db
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "position"}})
}

// existingIDs returns the subset of ids present in the table of M.
func existingIDs[M any, ID ~string](ctx context.Context, db *gorm.DB, ids []ID) ([]ID, error) {
	if len(ids) == 0 {
		return []ID{}, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = string(id)
	}

	var found []string
	if err := db.WithContext(ctx).Model(new(M)).Where("id IN ?", raw).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	out := make([]ID, len(found))
	for i, id := range found {
		out[i] = ID(id)
	}
	return out, nil
}

func toPage[M any, T any](q pagination.SearchQuery, rows []M, total int64, convert func(*M) T) pagination.Pagination[T] {
	items := make([]T, len(rows))
	for i := range rows {
		items[i] = convert(&rows[i])
	}
	return pagination.New(q.Page, q.PerPage, total, items)
}
