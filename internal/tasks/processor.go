// Package tasks holds the worker side of the event stream: receipts for
// recorded payments and the daily activity report.
package tasks

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/rs/zerolog"

	"carrental/internal/events"
	"carrental/internal/service"
)

type JSONStore interface {
	PutJSON(ctx context.Context, bucket, key string, v any) error
}

type Reporter interface {
	Daily(ctx context.Context, day time.Time) (service.DailyReport, error)
}

type Buckets struct {
	Receipts string
	Reports  string
}

// Receipt is the document written for every recorded payment.
type Receipt struct {
	ReceiptID     string    `json:"receipt_id"`
	PaymentID     int64     `json:"payment_id"`
	RentalID      int64     `json:"rental_id"`
	UserID        int64     `json:"user_id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issued_at"`
}

type Processor struct {
	store    JSONStore
	reporter Reporter
	buckets  Buckets
	logger   zerolog.Logger
}

func NewProcessor(store JSONStore, reporter Reporter, buckets Buckets, logger zerolog.Logger) *Processor {
	return &Processor{
		store:    store,
		reporter: reporter,
		buckets:  buckets,
		logger:   logger,
	}
}

// Handle implements events.Handler. Returning an error leaves the entry
// pending so the consumer retries it.
func (p *Processor) Handle(ctx context.Context, e events.Event) error {
	switch e.Type {
	case events.TypePaymentRecorded:
		return p.handlePayment(ctx, e)
	case events.TypeReportDaily:
		return p.handleReport(ctx, e)
	case events.TypeRentalCreated, events.TypeRentalUpdated:
		var payload events.RentalPayload
		if err := e.Decode(&payload); err != nil {
			return fmt.Errorf("decode %s: %w", e.Type, err)
		}
		p.logger.Info().
			Str("event_type", e.Type).
			Int64("rental_id", payload.RentalID).
			Str("status", payload.Status).
			Msg("rental changed")
		return nil
	case events.TypeUserRegistered:
		var payload events.UserPayload
		if err := e.Decode(&payload); err != nil {
			return fmt.Errorf("decode %s: %w", e.Type, err)
		}
		p.logger.Info().Int64("user_id", payload.UserID).Msg("user registered")
		return nil
	default:
		p.logger.Warn().Str("event_type", e.Type).Msg("unknown event type")
		return nil
	}
}

func (p *Processor) handlePayment(ctx context.Context, e events.Event) error {
	var payload events.PaymentPayload
	if err := e.Decode(&payload); err != nil {
		return fmt.Errorf("decode %s: %w", e.Type, err)
	}

	receipt := Receipt{
		ReceiptID:     e.ID,
		PaymentID:     payload.PaymentID,
		RentalID:      payload.RentalID,
		UserID:        payload.UserID,
		Amount:        payload.Amount,
		PaymentMethod: payload.PaymentMethod,
		PaymentDate:   payload.PaymentDate,
		Status:        payload.Status,
		IssuedAt:      e.OccurredAt,
	}

	key := ReceiptKey(payload.PaymentID, payload.PaymentDate)
	if err := p.store.PutJSON(ctx, p.buckets.Receipts, key, receipt); err != nil {
		return fmt.Errorf("store receipt: %w", err)
	}
	p.logger.Info().Int64("payment_id", payload.PaymentID).Str("object", key).Msg("receipt stored")
	return nil
}

func (p *Processor) handleReport(ctx context.Context, e events.Event) error {
	var payload events.ReportPayload
	if err := e.Decode(&payload); err != nil {
		return fmt.Errorf("decode %s: %w", e.Type, err)
	}
	day, err := time.Parse(time.DateOnly, payload.Day)
	if err != nil {
		// A bad day will never parse; retrying is pointless.
		p.logger.Error().Err(err).Str("day", payload.Day).Msg("report request dropped")
		return nil
	}

	report, err := p.reporter.Daily(ctx, day)
	if err != nil {
		return fmt.Errorf("build report %s: %w", payload.Day, err)
	}

	key := ReportKey(day)
	if err := p.store.PutJSON(ctx, p.buckets.Reports, key, report); err != nil {
		return fmt.Errorf("store report: %w", err)
	}
	p.logger.Info().
		Str("day", report.Day).
		Int("rentals", report.RentalsStarted).
		Int("payments", report.PaymentsCount).
		Msg("daily report stored")
	return nil
}

// ReceiptKey is stable per payment so redelivered events overwrite.
func ReceiptKey(paymentID int64, paidAt time.Time) string {
	return path.Join("receipts", paidAt.UTC().Format("2006/01/02"), fmt.Sprintf("payment-%d.json", paymentID))
}

func ReportKey(day time.Time) string {
	return path.Join("daily", day.UTC().Format(time.DateOnly)+".json")
}
