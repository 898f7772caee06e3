package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carrental/internal/filter"
	"carrental/internal/models"
)

// DailyReport summarizes the rentals started and payments dated on one UTC day.
type DailyReport struct {
	Day              string            `json:"day"`
	RentalsStarted   int               `json:"rentals_started"`
	RentalsByStatus  map[string]int    `json:"rentals_by_status"`
	PaymentsCount    int               `json:"payments_count"`
	PaymentsTotal    decimal.Decimal   `json:"payments_total"`
	PaymentsByMethod map[string]string `json:"payments_by_method"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

type ReportService struct {
	rentals  RentalStore
	payments PaymentStore
	now      func() time.Time
}

func NewReportService(rentals RentalStore, payments PaymentStore) *ReportService {
	return &ReportService{rentals: rentals, payments: payments, now: time.Now}
}

func (s *ReportService) Daily(ctx context.Context, day time.Time) (DailyReport, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)
	window := filter.Range[time.Time]{From: &from, To: &to}

	rentals, err := s.rentals.Find(ctx, models.RentalFilter{StartTime: window})
	if err != nil {
		return DailyReport{}, fmt.Errorf("rentals for %s: %w", from.Format(time.DateOnly), err)
	}
	payments, err := s.payments.Find(ctx, models.PaymentFilter{PaymentDate: window})
	if err != nil {
		return DailyReport{}, fmt.Errorf("payments for %s: %w", from.Format(time.DateOnly), err)
	}

	report := DailyReport{
		Day:              from.Format(time.DateOnly),
		RentalsStarted:   len(rentals),
		RentalsByStatus:  make(map[string]int),
		PaymentsCount:    len(payments),
		PaymentsTotal:    decimal.Zero,
		PaymentsByMethod: make(map[string]string),
		GeneratedAt:      s.now().UTC(),
	}
	for _, r := range rentals {
		report.RentalsByStatus[r.Status]++
	}

	byMethod := make(map[string]decimal.Decimal)
	for _, p := range payments {
		report.PaymentsTotal = report.PaymentsTotal.Add(p.Amount)
		byMethod[p.PaymentMethod] = byMethod[p.PaymentMethod].Add(p.Amount)
	}
	for method, sum := range byMethod {
		report.PaymentsByMethod[method] = sum.StringFixed(2)
	}
	return report, nil
}
