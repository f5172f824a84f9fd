// Package invoices shapes the filtered, paginated invoice listing and the
// single-invoice lookup used by the edit form.
package invoices

import (
	"context"
	"time"

	"billing-dashboard-backend/internal/dberr"
	"billing-dashboard-backend/internal/money"
	"billing-dashboard-backend/internal/repository"
	"billing-dashboard-backend/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListItem is one row of the invoices table, joined with its customer and
// with the amount already rendered for display.
type ListItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
}

// Form is the raw-valued single-invoice projection for the edit form; Amount
// is in major units (dollars), not a formatted string.
type Form struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

type Service struct {
	repo     *repository.InvoiceRepository
	pageSize int
	log      *zap.Logger
}

func NewService(repo *repository.InvoiceRepository, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		pageSize: search.ItemsPerPage,
		log:      log.Named("invoices.service"),
	}
}

// List returns page (1-based) of invoices matching term, at most one page
// size of rows, most recent first. Formatting happens here, exactly once per
// value; the store only ever sees raw cents.
func (s *Service) List(ctx context.Context, term string, page int) ([]ListItem, error) {
	const op = "invoices.list"
	offset, limit, err := search.BuildPage(page, s.pageSize)
	if err != nil {
		return nil, dberr.E(dberr.InvalidInput, op, err)
	}
	rows, err := s.repo.ListFiltered(ctx, search.InvoiceFilter(term), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ListItem{
			ID:       row.ID,
			Name:     row.CustomerName,
			Email:    row.CustomerEmail,
			ImageURL: row.CustomerImageURL,
			Amount:   money.FormatCents(row.Amount),
			Date:     row.Date,
			Status:   row.Status,
		})
	}
	return items, nil
}

// TotalPages reports how many pages the filtered set spans: zero matches is
// zero pages, otherwise ceil(matches / page size).
func (s *Service) TotalPages(ctx context.Context, term string) (int64, error) {
	n, err := s.repo.CountFiltered(ctx, search.InvoiceFilter(term))
	if err != nil {
		return 0, err
	}
	pageSize := int64(s.pageSize)
	return (n + pageSize - 1) / pageSize, nil
}

// GetByID returns the invoice as edit-form values, with cents converted to
// major units. An absent invoice surfaces as a NotFound kind, which callers
// treat as a valid outcome rather than a failure.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Form, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Form{}, err
	}
	return Form{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.CentsToUnits(inv.Amount),
		Status:     inv.Status,
	}, nil
}
