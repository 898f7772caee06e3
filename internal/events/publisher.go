package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"carrental/internal/ids"
)

type Publisher struct {
	client *redis.Client
	stream string
	maxLen int64
	log    zerolog.Logger
	now    func() time.Time
}

func NewPublisher(client *redis.Client, stream string, maxLen int64, log zerolog.Logger) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		log:    log,
		now:    time.Now,
	}
}

// Publish appends an event to the stream. A nil publisher or client is a no-op.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload any) (Event, error) {
	if p == nil || p.client == nil {
		return Event{}, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	e := Event{
		ID:         ids.New(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Payload:    raw,
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: e.values(),
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return Event{}, fmt.Errorf("xadd %s: %w", eventType, err)
	}
	return e, nil
}

// Emit is Publish for callers that must not fail on delivery problems.
func (p *Publisher) Emit(ctx context.Context, eventType string, payload any) {
	if p == nil {
		return
	}
	if _, err := p.Publish(ctx, eventType, payload); err != nil {
		p.log.Warn().Err(err).Str("event_type", eventType).Msg("publish event failed")
	}
}
