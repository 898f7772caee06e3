package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"carrental/internal/events"
)

type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) (events.Event, error)
}

// Scheduler raises periodic events; the worker does the actual work.
type Scheduler struct {
	cron           *cron.Cron
	publisher      Publisher
	reportSchedule string
	log            zerolog.Logger
	now            func() time.Time
}

func NewScheduler(publisher Publisher, reportSchedule string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:           cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		publisher:      publisher,
		reportSchedule: reportSchedule,
		log:            log,
		now:            time.Now,
	}
}

func (s *Scheduler) Start() error {
	if s.publisher == nil || s.reportSchedule == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(s.reportSchedule, s.requestDailyReport); err != nil {
		return fmt.Errorf("report schedule %q: %w", s.reportSchedule, err)
	}

	s.cron.Start()
	s.log.Info().Str("schedule", s.reportSchedule).Msg("scheduler started")
	return nil
}

// Stop halts the cron and returns a context done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// requestDailyReport asks for the report of the previous UTC day.
func (s *Scheduler) requestDailyReport() {
	day := s.now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.publisher.Publish(ctx, events.TypeReportDaily, events.ReportPayload{Day: day}); err != nil {
		s.log.Error().Err(err).Str("day", day).Msg("request daily report failed")
		return
	}
	s.log.Info().Str("day", day).Msg("daily report requested")
}
