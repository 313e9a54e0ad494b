// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the filter composer shared by every
// paginated list query.
//
// A Filter is an ordered list of bound predicate fragments. Each recognized,
// present query parameter contributes exactly one fragment; absent
// parameters contribute nothing, so an empty filter is equivalent to no
// WHERE clause at all. Fragments are combined with AND and handed to GORM
// as a single condition with its arguments, so every value stays bound;
// no filter value is ever spliced into SQL text.
package repo

import (
	"strings"

	"gorm.io/gorm"
)

// Filter accumulates bound predicate fragments for a list query.
// The zero value is ready to use. Filters are built fresh per request and
// never shared across requests.
type Filter struct {
	conds []string
	args  []any
}

// Where appends a raw fragment with its bound arguments. The fragment must
// use `?` placeholders for every argument.
func (f *Filter) Where(cond string, args ...any) *Filter {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
	return f
}

// Eq appends an exact-match predicate on col.
func (f *Filter) Eq(col string, v any) *Filter {
	return f.Where(col+" = ?", v)
}

// Gte appends a lower-bound predicate on col.
func (f *Filter) Gte(col string, v any) *Filter {
	return f.Where(col+" >= ?", v)
}

// Lte appends an upper-bound predicate on col.
func (f *Filter) Lte(col string, v any) *Filter {
	return f.Where(col+" <= ?", v)
}

// Search appends one case-insensitive substring predicate spanning the
// given text columns. Within the fragment the columns are ORed, so the
// fragment as a whole still narrows the result set like any other
// predicate. LIKE wildcards in the term are matched literally via escaping.
func (f *Filter) Search(term string, cols ...string) *Filter {
	if term == "" || len(cols) == 0 {
		return f
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return f.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// Empty reports whether no predicate has been added.
func (f *Filter) Empty() bool { return len(f.conds) == 0 }

// Apply attaches the combined predicate to a GORM query. All fragments are
// joined with AND and passed as one condition with its argument list.
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil || len(f.conds) == 0 {
		return db
	}
	return db.Where(strings.Join(f.conds, " AND "), f.args...)
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// listOrder is the deterministic ordering applied to every list query.
// created_at DESC puts newest rows first; id breaks timestamp ties so pages
// never overlap or skip rows.
const listOrder = "created_at DESC, id DESC"

// countAndPage runs the shared list pattern: COUNT(*) under the filter,
// then the page query under the same filter with deterministic ordering and
// LIMIT/OFFSET. model selects the table for the count; out receives the
// page slice.
func countAndPage(db *gorm.DB, f *Filter, model any, out any, offset, limit int) (int64, error) {
	var total int64
	if err := f.Apply(db.Model(model)).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	err := f.Apply(db.Model(model)).
		Order(listOrder).
		Offset(offset).
		Limit(limit).
		Find(out).Error
	return total, err
}
