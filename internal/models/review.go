package models

import (
	"time"

	"carrental/internal/filter"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        int64
	RentalID  int64
	UserID    int64
	Rating    int
	Comment   *string
	CreatedAt time.Time
}

type ReviewFilter struct {
	UserID    *int64
	RentalID  *int64
	Rating    filter.Range[int]
	CreatedAt filter.Range[time.Time]
}

func (f ReviewFilter) IsZero() bool {
	return f.UserID == nil && f.RentalID == nil && f.Rating.IsZero() && f.CreatedAt.IsZero()
}
