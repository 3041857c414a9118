package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ptt_notifier/internal/config"
)

const jobTimeout = 5 * time.Minute

// Jobs are the periodic entry points the scheduler drives. Each runs with
// its own timeout; a failing tick is logged and the schedule keeps going.
type Jobs struct {
	Intake func(ctx context.Context) error
	Digest func(ctx context.Context) error
	Purge  func(ctx context.Context) error
}

// Scheduler runs intake on a fixed interval inside the active window, and
// digest and purge on cron specs, all in the configured timezone.
type Scheduler struct {
	cron      *cron.Cron
	loc       *time.Location
	startHour int
	endHour   int
	logger    *slog.Logger
	now       func() time.Time
}

func New(cfg config.ScheduleConfig, loc *time.Location, jobs Jobs, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		loc:       loc,
		startHour: cfg.StartHour,
		endHour:   cfg.EndHour,
		logger:    logger.With("component", "scheduler"),
		now:       time.Now,
	}

	intakeSpec := fmt.Sprintf("@every %s", cfg.IntakeInterval)
	if _, err := s.cron.AddFunc(intakeSpec, func() {
		if !s.withinActiveWindow(s.now()) {
			s.logger.Debug("outside active window, intake skipped")
			return
		}
		s.runJob("intake", jobs.Intake)
	}); err != nil {
		return nil, fmt.Errorf("schedule intake: %w", err)
	}

	if _, err := s.cron.AddFunc(cfg.DigestSpec, func() {
		s.runJob("digest", jobs.Digest)
	}); err != nil {
		return nil, fmt.Errorf("schedule digest: %w", err)
	}

	if _, err := s.cron.AddFunc(cfg.PurgeSpec, func() {
		s.runJob("purge", jobs.Purge)
	}); err != nil {
		return nil, fmt.Errorf("schedule purge: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("scheduler started",
		"timezone", s.loc.String(),
		"active_hours", fmt.Sprintf("%02d:00-%02d:00", s.startHour, s.endHour),
	)
	s.cron.Start()
}

// Stop halts the schedule and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runJob(name string, job func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := job(ctx); err != nil {
		s.logger.Error("scheduled job failed", "job", name, "error", err)
	}
}

// withinActiveWindow reports whether t falls in [startHour, endHour) local
// time. Digest and purge run regardless; only intake is gated.
func (s *Scheduler) withinActiveWindow(t time.Time) bool {
	h := t.In(s.loc).Hour()
	return h >= s.startHour && h < s.endHour
}
