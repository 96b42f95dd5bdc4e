package scheduler

import (
	"context"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/slack-schedule-bot/pkg/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Scheduler ticks on a cron spec and runs every scheduled action that is due.
// A tick is skipped while the previous one is still running.
type Scheduler struct {
	cron       *cron.Cron
	spec       string
	scheduling contract.SchedulingService
	now        func() time.Time
}

func New(scheduling contract.SchedulingService, spec string, location *time.Location) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			// a tick still posting when the next one fires would post its actions twice
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger.L))),
		),
		spec:       spec,
		scheduling: scheduling,
		now:        time.Now,
	}
}

// Start registers the tick and starts the cron runner in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Tick(ctx) }); err != nil {
		return errors.Wrapf(err, "invalid scheduler spec %q", s.spec)
	}
	s.cron.Start()
	logger.G(ctx).WithField("spec", s.spec).Info("scheduler started")
	return nil
}

// Stop waits for a running tick to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	<-s.cron.Stop().Done()
	logger.G(ctx).Info("scheduler stopped")
}

// Tick runs the actions due now. Errors are logged; the next tick tries again.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.now().UTC().Truncate(time.Minute)
	if err := s.scheduling.RunDue(ctx, now); err != nil {
		logger.G(ctx).WithError(err).WithField("tick", now).Error("some scheduled actions failed")
	}
}
