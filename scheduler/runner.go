package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Job is the function invoked for a trigger.
type Job func(ctx context.Context, trigger Trigger) error

// Runner polls the scheduler and runs each trigger once its interval has elapsed since it
// last ran (or since it was created). Jobs run one at a time on the Run goroutine so runs
// never overlap.
type Runner struct {
	scheduler Scheduler
	jobs      map[string]Job
	interval  time.Duration
	last      map[string]time.Time
	now       func() time.Time
	log       *zap.Logger
}

const DefaultPollInterval = time.Minute

func NewRunner(scheduler Scheduler, jobs map[string]Job, interval time.Duration, logger *zap.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		scheduler: scheduler,
		jobs:      jobs,
		interval:  interval,
		last:      map[string]time.Time{},
		now:       time.Now,
		log:       logger,
	}
}

// Run polls until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	triggers, err := r.scheduler.List()
	if err != nil {
		r.log.Warn("unable to list triggers", zap.Error(err))
		return
	}

	active := map[string]bool{}

	for _, t := range triggers {
		active[t.ID] = true

		if ctx.Err() != nil {
			return
		}

		last, ok := r.last[t.ID]
		if !ok {
			last = t.Created
		}

		now := r.now()
		if now.Before(last.Add(t.Interval())) {
			continue
		}

		r.last[t.ID] = now

		job, ok := r.jobs[t.Function]
		if !ok {
			r.log.Warn("no job for trigger", zap.String("trigger", t.ID), zap.String("function", t.Function))
			continue
		}

		r.log.Info("running trigger", zap.String("trigger", t.ID), zap.String("function", t.Function))

		if err := job(ctx, t); err != nil {
			r.log.Error("trigger failed", zap.String("trigger", t.ID), zap.String("function", t.Function), zap.Error(err))
		}
	}

	for id := range r.last {
		if !active[id] {
			delete(r.last, id)
		}
	}
}
