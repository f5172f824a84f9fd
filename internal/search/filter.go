// Package search builds the filter predicates and pagination windows used by
// the dashboard listing and aggregation queries.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// ItemsPerPage is the dashboard's fixed page size.
const ItemsPerPage = 6

var ErrInvalidPage = errors.New("page number must be >= 1")

// Predicate matches rows where any of Columns contains Term as a
// case-insensitive substring. A blank term matches every row.
type Predicate struct {
	Columns []string
	Term    string
}

// InvoiceFilter covers the columns searchable from the invoices table view:
// customer name and email, amount and date rendered as text, and status.
func InvoiceFilter(term string) Predicate {
	return Predicate{
		Columns: []string{
			"customers.name",
			"customers.email",
			"CAST(invoices.amount AS TEXT)",
			"CAST(invoices.date AS TEXT)",
			"invoices.status",
		},
		Term: term,
	}
}

// CustomerFilter covers the customer table search columns.
func CustomerFilter(term string) Predicate {
	return Predicate{
		Columns: []string{"customers.name", "customers.email"},
		Term:    term,
	}
}

func (p Predicate) IsEmpty() bool {
	return strings.TrimSpace(p.Term) == ""
}

// Clause renders the predicate as a SQL condition with placeholder args.
// An empty predicate renders to an empty clause (no filtering).
func (p Predicate) Clause() (string, []any) {
	if p.IsEmpty() {
		return "", nil
	}
	like := "%" + strings.ToLower(strings.TrimSpace(p.Term)) + "%"
	conds := make([]string, len(p.Columns))
	args := make([]any, len(p.Columns))
	for i, col := range p.Columns {
		conds[i] = fmt.Sprintf("LOWER(%s) LIKE ?", col)
		args[i] = like
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

// BuildPage turns a 1-based page number into an offset/limit window.
// Page numbers below 1 are rejected, not clamped.
func BuildPage(page, size int) (offset, limit int, err error) {
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if size < 1 {
		return 0, 0, fmt.Errorf("page size must be >= 1, got %d", size)
	}
	return (page - 1) * size, size, nil
}
