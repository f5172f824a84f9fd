package repository

import (
	"context"

	"billing-dashboard-backend/internal/dberr"
	"billing-dashboard-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RevenueRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRevenueRepository(db *gorm.DB, log *zap.Logger) *RevenueRepository {
	return &RevenueRepository{db: db, log: log.Named("repository.revenue")}
}

// ListAll reads the pre-aggregated revenue buckets wholesale.
func (r *RevenueRepository) ListAll(ctx context.Context) ([]models.RevenueRecord, error) {
	const op = "revenue.list"
	var records []models.RevenueRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		r.log.Error("list revenue", zap.Error(err))
		return nil, dberr.Wrap(op, err)
	}
	return records, nil
}
