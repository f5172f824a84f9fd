package repository

import (
	"context"
	"database/sql"
	"time"

	"billing-dashboard-backend/internal/dberr"
	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvoiceRow is one joined invoice+customer row as returned by the store.
// CustomerName/Email/ImageURL come from the LEFT JOIN; JoinedCustomerID is
// NULL when the invoice references a customer that does not exist.
type InvoiceRow struct {
	ID               uuid.UUID      `gorm:"column:id"`
	Amount           int64          `gorm:"column:amount"`
	Status           string         `gorm:"column:status"`
	Date             time.Time      `gorm:"column:date"`
	JoinedCustomerID sql.NullString `gorm:"column:joined_customer_id"`
	CustomerName     string         `gorm:"column:customer_name"`
	CustomerEmail    string         `gorm:"column:customer_email"`
	CustomerImageURL string         `gorm:"column:customer_image_url"`
}

// StatusTotals holds the status-partitioned amount sums in cents.
type StatusTotals struct {
	Paid    int64 `gorm:"column:paid"`
	Pending int64 `gorm:"column:pending"`
}

const invoiceJoinColumns = `invoices.id,
	invoices.amount,
	invoices.status,
	invoices.date,
	customers.id AS joined_customer_id,
	customers.name AS customer_name,
	customers.email AS customer_email,
	customers.image_url AS customer_image_url`

type InvoiceRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewInvoiceRepository(db *gorm.DB, log *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{db: db, log: log.Named("repository.invoices")}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

func (r *InvoiceRepository) joined(ctx context.Context, pred search.Predicate) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("invoices").
		Joins("LEFT JOIN customers ON customers.id = invoices.customer_id")
	if clause, args := pred.Clause(); clause != "" {
		q = q.Where(clause, args...)
	}
	return q
}

// ListFiltered returns one page of joined invoice rows matching pred, ordered
// by date descending with id as the tie-break so pagination is deterministic.
// Limit and offset apply after filtering and ordering.
func (r *InvoiceRepository) ListFiltered(ctx context.Context, pred search.Predicate, limit, offset int) ([]InvoiceRow, error) {
	const op = "invoices.list"
	var rows []InvoiceRow
	err := r.joined(ctx, pred).
		Select(invoiceJoinColumns).
		Order("invoices.date DESC, invoices.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		r.log.Error("list invoices", zap.Error(err))
		return nil, dberr.Wrap(op, err)
	}
	for _, row := range rows {
		if !row.JoinedCustomerID.Valid {
			err := dberr.E(dberr.JoinIntegrity, op, nil)
			r.log.Error("invoice references missing customer",
				zap.String("invoice_id", row.ID.String()))
			return nil, err
		}
	}
	return rows, nil
}

// CountFiltered reports the exact number of invoices matching pred, over the
// same join the listing query uses.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, pred search.Predicate) (int64, error) {
	const op = "invoices.count_filtered"
	var n int64
	if err := r.joined(ctx, pred).Count(&n).Error; err != nil {
		r.log.Error("count invoices", zap.Error(err))
		return 0, dberr.Wrap(op, err)
	}
	return n, nil
}

// Count reports the exact number of invoices.
func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	const op = "invoices.count"
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&n).Error; err != nil {
		r.log.Error("count invoices", zap.Error(err))
		return 0, dberr.Wrap(op, err)
	}
	return n, nil
}

// SumByStatus returns the paid and pending amount totals over all invoices.
// Absent partitions (no rows in a status) come back as 0.
func (r *InvoiceRepository) SumByStatus(ctx context.Context) (StatusTotals, error) {
	const op = "invoices.sum_by_status"
	var totals StatusTotals
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS pending
		FROM invoices`,
		models.StatusPaid,
		models.StatusPending,
	).Scan(&totals).Error
	if err != nil {
		r.log.Error("sum invoices by status", zap.Error(err))
		return StatusTotals{}, dberr.Wrap(op, err)
	}
	return totals, nil
}

// GetByID fetches a single invoice. Zero matches is a NotFound outcome, more
// than one match for a unique id is a DataIntegrity failure.
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	const op = "invoices.get"
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(2).
		Find(&invoices).Error
	if err != nil {
		r.log.Error("get invoice", zap.String("invoice_id", id.String()), zap.Error(err))
		return nil, dberr.Wrap(op, err)
	}
	switch len(invoices) {
	case 0:
		return nil, dberr.E(dberr.NotFound, op, nil)
	case 1:
		return &invoices[0], nil
	default:
		r.log.Error("duplicate invoice id", zap.String("invoice_id", id.String()))
		return nil, dberr.E(dberr.DataIntegrity, op, nil)
	}
}

// Latest returns the n most recent joined invoice rows.
func (r *InvoiceRepository) Latest(ctx context.Context, n int) ([]InvoiceRow, error) {
	return r.ListFiltered(ctx, search.Predicate{}, n, 0)
}
