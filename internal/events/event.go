// Package events carries domain events over a Redis stream.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	TypeUserRegistered  = "user.registered"
	TypeRentalCreated   = "rental.created"
	TypeRentalUpdated   = "rental.updated"
	TypePaymentRecorded = "payment.recorded"
	TypeReportDaily     = "report.daily"
)

type Event struct {
	ID         string
	Type       string
	OccurredAt time.Time
	Payload    json.RawMessage
}

type UserPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

type RentalPayload struct {
	RentalID   int64  `json:"rental_id"`
	UserID     int64  `json:"user_id"`
	VehicleID  int64  `json:"vehicle_id"`
	Status     string `json:"status"`
	TotalPrice string `json:"total_price"`
}

type PaymentPayload struct {
	PaymentID     int64     `json:"payment_id"`
	RentalID      int64     `json:"rental_id"`
	UserID        int64     `json:"user_id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
	Status        string    `json:"status"`
}

// ReportPayload asks for a summary of Day, formatted as 2006-01-02.
type ReportPayload struct {
	Day string `json:"day"`
}

func (e Event) Decode(out any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("event %s has no payload", e.ID)
	}
	return json.Unmarshal(e.Payload, out)
}

func (e Event) values() map[string]any {
	return map[string]any{
		"id":          e.ID,
		"type":        e.Type,
		"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339Nano),
		"payload":     string(e.Payload),
	}
}

func fromMessage(msg redis.XMessage) (Event, error) {
	str := func(key string) string {
		if v, ok := msg.Values[key].(string); ok {
			return v
		}
		return ""
	}

	e := Event{
		ID:      str("id"),
		Type:    str("type"),
		Payload: json.RawMessage(str("payload")),
	}
	if e.Type == "" {
		return Event{}, fmt.Errorf("message %s: missing type", msg.ID)
	}
	if e.ID == "" {
		e.ID = msg.ID
	}
	if ts := str("occurred_at"); ts != "" {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return Event{}, fmt.Errorf("message %s: occurred_at: %w", msg.ID, err)
		}
		e.OccurredAt = t
	}
	return e, nil
}
