package models

import (
	"time"

	"github.com/shopspring/decimal"

	"carrental/internal/filter"
)

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

type Payment struct {
	ID            int64
	RentalID      int64
	UserID        int64
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentDate   time.Time
	Status        string
	CreatedAt     time.Time
}

type PaymentFilter struct {
	UserID        *int64
	RentalID      *int64
	Status        string
	PaymentMethod string
	Amount        filter.Range[decimal.Decimal]
	PaymentDate   filter.Range[time.Time]
}

func (f PaymentFilter) IsZero() bool {
	return f.UserID == nil && f.RentalID == nil && f.Status == "" && f.PaymentMethod == "" &&
		f.Amount.IsZero() && f.PaymentDate.IsZero()
}
