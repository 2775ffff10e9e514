package service

import (
	"context"
	"fmt"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/metrics"
	"github.com/IXIIIK/meteorit-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReminderPolicy sends reminder Which when a reservation starts Before from now.
type ReminderPolicy struct {
	Which  domain.Reminder
	Before time.Duration
}

type LifecycleConfig struct {
	Reminders []ReminderPolicy
	Tolerance time.Duration
	Duration  time.Duration
}

func DefaultReminders() []ReminderPolicy {
	return []ReminderPolicy{
		{Which: domain.Reminder24h, Before: 24 * time.Hour},
		{Which: domain.Reminder12h, Before: 12 * time.Hour},
	}
}

// LifecycleService moves stored reservations through their reminders and
// removes them once the visit is over.
type LifecycleService struct {
	repo     ports.ReservationRepo
	notifier ports.Notifier
	logger   logger.Logger
	cfg      LifecycleConfig
}

func NewLifecycleService(
	repo ports.ReservationRepo,
	notifier ports.Notifier,
	logger logger.Logger,
	cfg LifecycleConfig,
) *LifecycleService {
	if len(cfg.Reminders) == 0 {
		cfg.Reminders = DefaultReminders()
	}
	return &LifecycleService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
	}
}

// SendReminders claims and sends every reminder whose horizon window
// [now+h-tol, now+h+tol] contains the reservation start. The flag is set
// before sending, so a reminder goes out at most once.
func (s *LifecycleService) SendReminders(ctx context.Context, now time.Time) (int, error) {
	started := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("reminders").Observe(time.Since(started).Seconds())
	}()

	active, err := s.repo.ListActive(ctx)
	if err != nil {
		metrics.SweepErrorsTotal.WithLabelValues("reminders").Inc()
		return 0, fmt.Errorf("list active reservations: %w", err)
	}

	sent := 0
	for _, r := range active {
		if err = ctx.Err(); err != nil {
			return sent, err
		}

		for _, p := range s.cfg.Reminders {
			if r.Notified(p.Which) || !s.inWindow(r.StartAt, now.Add(p.Before)) {
				continue
			}

			claimed, err := s.repo.SetNotified(ctx, r.ID, p.Which)
			if err != nil {
				metrics.SweepErrorsTotal.WithLabelValues("reminders").Inc()
				s.logger.Error("failed to claim reminder",
					logger.String("reservation_id", r.ID),
					logger.String("reminder", p.Which.String()),
					logger.String("error", err.Error()),
				)
				continue
			}
			if !claimed {
				continue
			}

			params := domain.ParamsFor(r)
			params.Horizon = p.Which
			if err = s.notifier.Notify(ctx, r.UserID, domain.TemplateReminder, params); err != nil {
				metrics.NotificationFailuresTotal.WithLabelValues(string(domain.TemplateReminder)).Inc()
				s.logger.Warn("failed to deliver reminder",
					logger.String("reservation_id", r.ID),
					logger.String("reminder", p.Which.String()),
					logger.String("error", err.Error()),
				)
				continue
			}

			sent++
			metrics.RemindersSentTotal.WithLabelValues(p.Which.String()).Inc()
			s.logger.Info("reminder sent",
				logger.String("reservation_id", r.ID),
				logger.String("reminder", p.Which.String()),
			)
		}
	}

	return sent, nil
}

// ExpireFinished deletes reservations whose visit has ended and thanks the
// guest. Only the sweep that actually removed the row sends the message.
func (s *LifecycleService) ExpireFinished(ctx context.Context, now time.Time) (int, error) {
	started := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("expiry").Observe(time.Since(started).Seconds())
	}()

	active, err := s.repo.ListActive(ctx)
	if err != nil {
		metrics.SweepErrorsTotal.WithLabelValues("expiry").Inc()
		return 0, fmt.Errorf("list active reservations: %w", err)
	}

	expired := 0
	for _, r := range active {
		if err = ctx.Err(); err != nil {
			return expired, err
		}
		if !now.After(r.EndAt(s.cfg.Duration)) {
			continue
		}

		deleted, err := s.repo.Delete(ctx, r.ID)
		if err != nil {
			metrics.SweepErrorsTotal.WithLabelValues("expiry").Inc()
			s.logger.Error("failed to expire reservation",
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !deleted {
			continue
		}

		expired++
		metrics.ReservationsExpiredTotal.Inc()

		if err = s.notifier.Notify(ctx, r.UserID, domain.TemplatePostVisit, domain.ParamsFor(r)); err != nil {
			metrics.NotificationFailuresTotal.WithLabelValues(string(domain.TemplatePostVisit)).Inc()
			s.logger.Warn("failed to deliver post-visit message",
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if expired > 0 {
		s.logger.Info("expired reservations removed",
			logger.Int("count", expired),
		)
	}

	return expired, nil
}

func (s *LifecycleService) inWindow(start, target time.Time) bool {
	return !start.Before(target.Add(-s.cfg.Tolerance)) && !start.After(target.Add(s.cfg.Tolerance))
}
