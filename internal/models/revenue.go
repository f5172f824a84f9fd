package models

// RevenueRecord is a pre-aggregated (period, amount) bucket maintained
// outside this service; it is read wholesale for the revenue chart.
type RevenueRecord struct {
	Month   string `gorm:"primaryKey"`
	Revenue int64
}

func (RevenueRecord) TableName() string { return "revenue" }
