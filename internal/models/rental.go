package models

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental/internal/filter"
)

const (
	RentalStatusActive    = "ACTIVE"
	RentalStatusCompleted = "COMPLETED"
	RentalStatusCancelled = "CANCELLED"
)

type Rental struct {
	ID             int64
	UserID         int64
	VehicleID      int64
	StartTime      time.Time
	EndTime        time.Time
	TotalPrice     decimal.Decimal
	Status         string
	PickupLocation *string
	CreatedAt      time.Time
}

type RentalFilter struct {
	UserID    *int64
	VehicleID *int64
	Status    string
	StartTime filter.Range[time.Time]
	EndTime   filter.Range[time.Time]
}

func (f RentalFilter) IsZero() bool {
	return f.UserID == nil && f.VehicleID == nil && f.Status == "" &&
		f.StartTime.IsZero() && f.EndTime.IsZero()
}
