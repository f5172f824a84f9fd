package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	// Amount is in minor currency units (cents), never negative.
	Amount    int64     `gorm:"index"`
	Status    string    `gorm:"index"`
	Date      time.Time `gorm:"type:date;index"`
	Metadata  datatypes.JSONMap
	CreatedAt time.Time
}
