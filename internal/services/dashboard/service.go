// Package dashboard computes the summary aggregates shown on the billing
// dashboard's overview page.
package dashboard

import (
	"context"

	"billing-dashboard-backend/internal/dberr"
	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/money"
	"billing-dashboard-backend/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const latestInvoiceCount = 5

// CardSummary is the overview card block: two raw counts and two
// display-formatted status totals, always over the full dataset.
type CardSummary struct {
	NumberOfCustomers    int64  `json:"number_of_customers"`
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// LatestInvoice is one row of the "latest invoices" panel.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

type Service struct {
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
	revenueRepo  *repository.RevenueRepository
	log          *zap.Logger
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	customerRepo *repository.CustomerRepository,
	revenueRepo *repository.RevenueRepository,
	log *zap.Logger,
) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		log:          log.Named("dashboard.service"),
	}
}

// CardSummary runs its three sub-aggregations concurrently and merges them
// once all complete. The first failure cancels the remaining reads and the
// whole summary fails; partial results are never returned.
func (s *Service) CardSummary(ctx context.Context) (CardSummary, error) {
	const op = "dashboard.card_summary"

	var (
		invoiceCount  int64
		customerCount int64
		totals        repository.StatusTotals
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.invoiceRepo.Count(ctx)
		invoiceCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.customerRepo.Count(ctx)
		customerCount = n
		return err
	})
	g.Go(func() error {
		t, err := s.invoiceRepo.SumByStatus(ctx)
		totals = t
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("card summary aggregation failed", zap.Error(err))
		return CardSummary{}, dberr.E(dberr.AggregationFailed, op, err)
	}

	return CardSummary{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    money.FormatCents(totals.Paid),
		TotalPendingInvoices: money.FormatCents(totals.Pending),
	}, nil
}

// Revenue returns the chart buckets as stored.
func (s *Service) Revenue(ctx context.Context) ([]models.RevenueRecord, error) {
	return s.revenueRepo.ListAll(ctx)
}

// LatestInvoices returns the five most recent invoices with their customer
// details, amounts formatted for display.
func (s *Service) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	rows, err := s.invoiceRepo.Latest(ctx, latestInvoiceCount)
	if err != nil {
		return nil, err
	}
	latest := make([]LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, LatestInvoice{
			ID:       row.ID.String(),
			Name:     row.CustomerName,
			Email:    row.CustomerEmail,
			ImageURL: row.CustomerImageURL,
			Amount:   money.FormatCents(row.Amount),
		})
	}
	return latest, nil
}
