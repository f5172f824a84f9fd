// Package customers shapes the customer listings for selection widgets and
// the customers table.
package customers

import (
	"context"

	"billing-dashboard-backend/internal/money"
	"billing-dashboard-backend/internal/repository"
	"billing-dashboard-backend/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option is the id+name pair consumed by select widgets.
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TableRow is one customer of the customers table, with invoice totals
// aggregated and formatted for display.
type TableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

type Service struct {
	repo *repository.CustomerRepository
	log  *zap.Logger
}

func NewService(repo *repository.CustomerRepository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log.Named("customers.service")}
}

// Options lists every customer as an id+name pair, name ascending.
func (s *Service) Options(ctx context.Context) ([]Option, error) {
	rows, err := s.repo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(rows))
	for _, row := range rows {
		options = append(options, Option{ID: row.ID, Name: row.Name})
	}
	return options, nil
}

// Table lists customers matching term with their invoice totals formatted.
func (s *Service) Table(ctx context.Context, term string) ([]TableRow, error) {
	rows, err := s.repo.ListFiltered(ctx, search.CustomerFilter(term))
	if err != nil {
		return nil, err
	}
	table := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, TableRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  money.FormatCents(row.TotalPending),
			TotalPaid:     money.FormatCents(row.TotalPaid),
		})
	}
	return table, nil
}
