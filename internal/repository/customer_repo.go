package repository

import (
	"context"

	"billing-dashboard-backend/internal/dberr"
	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerOptionRow is the minimal id+name projection for select widgets.
type CustomerOptionRow struct {
	ID   uuid.UUID `gorm:"column:id"`
	Name string    `gorm:"column:name"`
}

// CustomerTableRow is one customer with invoice totals aggregated in.
type CustomerTableRow struct {
	ID            uuid.UUID `gorm:"column:id"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email"`
	ImageURL      string    `gorm:"column:image_url"`
	TotalInvoices int64     `gorm:"column:total_invoices"`
	TotalPending  int64     `gorm:"column:total_pending"`
	TotalPaid     int64     `gorm:"column:total_paid"`
}

type CustomerRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCustomerRepository(db *gorm.DB, log *zap.Logger) *CustomerRepository {
	return &CustomerRepository{db: db, log: log.Named("repository.customers")}
}

// Count reports the exact number of customers.
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	const op = "customers.count"
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error; err != nil {
		r.log.Error("count customers", zap.Error(err))
		return 0, dberr.Wrap(op, err)
	}
	return n, nil
}

// ListOptions returns every customer as an id+name pair, name ascending.
func (r *CustomerRepository) ListOptions(ctx context.Context) ([]CustomerOptionRow, error) {
	const op = "customers.options"
	var rows []CustomerOptionRow
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC, id ASC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("list customer options", zap.Error(err))
		return nil, dberr.Wrap(op, err)
	}
	return rows, nil
}

// ListFiltered returns customers matching pred with their invoice count and
// status-partitioned amount totals, name ascending.
func (r *CustomerRepository) ListFiltered(ctx context.Context, pred search.Predicate) ([]CustomerTableRow, error) {
	const op = "customers.list_filtered"
	q := r.db.WithContext(ctx).
		Table("customers").
		Select(`customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_paid`,
			models.StatusPending, models.StatusPaid).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id")
	if clause, args := pred.Clause(); clause != "" {
		q = q.Where(clause, args...)
	}
	var rows []CustomerTableRow
	err := q.Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC, customers.id ASC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("list customers", zap.Error(err))
		return nil, dberr.Wrap(op, err)
	}
	return rows, nil
}

// GetByID fetches one customer with the same 0/1/many discipline as invoices.
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	const op = "customers.get"
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Limit(2).
		Find(&customers).Error
	if err != nil {
		r.log.Error("get customer", zap.String("customer_id", id.String()), zap.Error(err))
		return nil, dberr.Wrap(op, err)
	}
	switch len(customers) {
	case 0:
		return nil, dberr.E(dberr.NotFound, op, nil)
	case 1:
		return &customers[0], nil
	default:
		r.log.Error("duplicate customer id", zap.String("customer_id", id.String()))
		return nil, dberr.E(dberr.DataIntegrity, op, nil)
	}
}
