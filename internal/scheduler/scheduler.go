package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

type lifecycleRunner interface {
	SendReminders(ctx context.Context, now time.Time) (int, error)
	ExpireFinished(ctx context.Context, now time.Time) (int, error)
}

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context, now time.Time) (int, error)
}

// Scheduler owns the reminder and expiry sweeps. Each sweep runs on its own
// ticker; a tick that arrives while a sweep is still running is dropped.
type Scheduler struct {
	lifecycle        lifecycleRunner
	reminderInterval time.Duration
	expiryInterval   time.Duration
	logger           logger.Logger
	now              func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(
	lifecycle lifecycleRunner,
	reminderInterval time.Duration,
	expiryInterval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		lifecycle:        lifecycle,
		reminderInterval: reminderInterval,
		expiryInterval:   expiryInterval,
		logger:           logger,
		now:              time.Now,
	}
}

// Start launches both sweeps and returns. Calling it twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	for _, j := range s.jobs() {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()
			s.loop(ctx, j)
		}(j)
	}
}

// Stop cancels the sweeps and waits for the running ones to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// RunOnce runs every sweep a single time, for the CLI.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	var errs []error
	for _, j := range s.jobs() {
		n, err := j.run(ctx, s.now())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.logger.Info("sweep finished",
			logger.String("sweep", j.name),
			logger.Int("processed", n),
		)
	}
	return errors.Join(errs...)
}

func (s *Scheduler) jobs() []job {
	return []job{
		{name: "reminders", interval: s.reminderInterval, run: s.lifecycle.SendReminders},
		{name: "expiry", interval: s.expiryInterval, run: s.lifecycle.ExpireFinished},
	}
}

func (s *Scheduler) loop(ctx context.Context, j job) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.logger.Info("sweep started",
		logger.String("sweep", j.name),
		logger.Duration("interval", j.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweep stopped", logger.String("sweep", j.name))
			return
		case <-ticker.C:
			s.tick(ctx, j)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, j job) {
	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	n, err := j.run(ctx, s.now())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warn("sweep overran its interval",
				logger.String("sweep", j.name),
				logger.Duration("interval", j.interval),
			)
			return
		}
		s.logger.Error("sweep failed",
			logger.String("sweep", j.name),
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Debug("sweep processed reservations",
			logger.String("sweep", j.name),
			logger.Int("count", n),
		)
	}
}
