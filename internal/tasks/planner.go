package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	resetQueuesSpec = "0 0 0 * * *"    // every day at midnight
	noShowSpec      = "0 */15 * * * *" // every 15 minutes
	jobTimeout      = time.Minute
)

type QueueResetter interface {
	Reset(ctx context.Context)
}

type NoShowMarker interface {
	MarkNoShows(ctx context.Context, before string) (int64, error)
}

// Scheduler runs the clinic's periodic jobs.
type Scheduler struct {
	cron         *cron.Cron
	queues       QueueResetter
	appointments NoShowMarker
	log          zerolog.Logger
	now          func() time.Time
}

func NewScheduler(queues QueueResetter, appointments NoShowMarker, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithSeconds()),
		queues:       queues,
		appointments: appointments,
		log:          log.With().Str("component", "scheduler").Logger(),
		now:          time.Now,
	}
}

// ResetDailyQueues empties every doctor's queue. Queues hold one day of visits.
func (s *Scheduler) ResetDailyQueues() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.queues.Reset(ctx)
	s.log.Info().Msg("daily queues reset")
}

// MarkNoShows flags appointments from previous days that were never queued.
func (s *Scheduler) MarkNoShows() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := s.now().Format(time.DateOnly)
	n, err := s.appointments.MarkNoShows(ctx, today)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to mark no-shows")
		return
	}
	if n > 0 {
		s.log.Info().Int64("appointments", n).Str("before", today).Msg("appointments marked as no-show")
	}
}

// Start registers the jobs and starts the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(resetQueuesSpec, s.ResetDailyQueues); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(noShowSpec, s.MarkNoShows); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("cron scheduler started")
	return nil
}

// Stop stops scheduling new runs. The returned context is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
