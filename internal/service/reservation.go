package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/allocator"
	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/metrics"
	"github.com/IXIIIK/meteorit-bot/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const maxGuestNameLen = 100

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

type ReservationService struct {
	repo     ports.ReservationRepo
	alloc    *allocator.Allocator
	holds    ports.SlotHolder
	notifier ports.Notifier
	logger   logger.Logger
	now      func() time.Time
}

type Option func(*ReservationService)

// WithClock overrides the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ReservationService) {
		s.now = now
	}
}

// NewReservationService wires the booking path. holds may be nil, in which
// case accepted slots are not held between the decision and the confirmation.
func NewReservationService(
	repo ports.ReservationRepo,
	alloc *allocator.Allocator,
	holds ports.SlotHolder,
	notifier ports.Notifier,
	logger logger.Logger,
	opts ...Option,
) *ReservationService {
	s := &ReservationService{
		repo:     repo,
		alloc:    alloc,
		holds:    holds,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReservationService) Hours() domain.OperatingHours {
	return s.alloc.Hours()
}

func (s *ReservationService) Inventory() *domain.Inventory {
	return s.alloc.Inventory()
}

// RequestBooking asks the allocator about a slot. An Accepted slot is held
// for the guest; a Suggested one has to be requested again explicitly. A
// Rejected decision is returned together with ErrNoAlternativeAvailable.
func (s *ReservationService) RequestBooking(ctx context.Context, req domain.BookingRequest) (domain.Decision, error) {
	return s.decide(ctx, req, true)
}

// Check answers the same question as RequestBooking without holding the slot.
func (s *ReservationService) Check(ctx context.Context, req domain.BookingRequest) (domain.Decision, error) {
	return s.decide(ctx, req, false)
}

func (s *ReservationService) decide(ctx context.Context, req domain.BookingRequest, hold bool) (domain.Decision, error) {
	hours := s.alloc.Hours()
	start, err := hours.Combine(req.Date, req.Time)
	if err != nil {
		return domain.Decision{}, err
	}
	if !start.After(s.now()) {
		return domain.Decision{}, fmt.Errorf("%w: %s %s is in the past", domain.ErrInvalidSlot, req.Date, req.Time)
	}

	class, err := s.alloc.Inventory().ClassFor(req.PartySize)
	if err != nil {
		return domain.Decision{}, err
	}

	existing, err := s.repo.ListActive(ctx)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("list active reservations: %w", err)
	}
	existing = append(existing, s.heldByOthers(ctx, class, req.UserID)...)

	var decision domain.Decision
	// each failed hold removes one interval from play, so the loop is bounded
	for attempt := 0; attempt <= len(class.Tables); attempt++ {
		decision, err = s.alloc.CheckAndAllocate(class, start, existing)
		if err != nil {
			return domain.Decision{}, err
		}
		if !hold || decision.Outcome != domain.OutcomeAccepted || s.holds == nil {
			break
		}

		held, err := s.holds.Hold(ctx, decision.TableRef, decision.StartAt, req.UserID)
		if err != nil {
			s.logger.Warn("slot hold unavailable",
				logger.String("table", decision.TableRef),
				logger.String("error", err.Error()),
			)
			break
		}
		if held {
			break
		}

		s.logger.Debug("slot held by another guest",
			logger.String("table", decision.TableRef),
			logger.String("start_at", decision.StartAt.Format(time.RFC3339)),
		)
		existing = append(existing, domain.SlotHold{
			TableRef: decision.TableRef,
			StartAt:  decision.StartAt,
		}.AsReservation())
	}

	metrics.AllocationDecisionsTotal.WithLabelValues(string(decision.Outcome)).Inc()

	s.logger.Info("allocation decided",
		logger.Int64("user_id", req.UserID),
		logger.String("outcome", string(decision.Outcome)),
		logger.String("table", decision.TableRef),
		logger.Int("party_size", req.PartySize),
	)

	if decision.Outcome == domain.OutcomeRejected {
		return decision, fmt.Errorf("%w: %s for %d guests", domain.ErrNoAlternativeAvailable, req.Date, req.PartySize)
	}
	return decision, nil
}

// heldByOthers returns other guests' live holds on the class's tables as
// occupied intervals. Without Redis, or when it fails, there are none.
func (s *ReservationService) heldByOthers(ctx context.Context, class domain.TableClass, userID int64) []*domain.Reservation {
	if s.holds == nil {
		return nil
	}

	held, err := s.holds.Held(ctx, class.Tables, userID)
	if err != nil {
		s.logger.Warn("slot holds unavailable", logger.String("error", err.Error()))
		return nil
	}

	out := make([]*domain.Reservation, 0, len(held))
	for _, h := range held {
		out = append(out, h.AsReservation())
	}
	return out
}

// Confirm persists an accepted slot once the guest has left a name and a
// phone number.
func (s *ReservationService) Confirm(ctx context.Context, in domain.ConfirmInput) (*domain.Reservation, error) {
	name, err := NormalizeGuestName(in.GuestName)
	if err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(in.GuestPhone)
	if err != nil {
		return nil, err
	}

	capacity, ok := s.alloc.Inventory().CapacityOf(in.TableRef)
	if !ok {
		return nil, fmt.Errorf("%w: unknown table %q", domain.ErrValidation, in.TableRef)
	}
	if in.PartySize <= 0 {
		return nil, fmt.Errorf("%w: party size must be positive", domain.ErrValidation)
	}
	if in.PartySize > capacity {
		return nil, fmt.Errorf("%w: table %s seats %d", domain.ErrInvalidPartySize, in.TableRef, capacity)
	}

	hours := s.alloc.Hours()
	start := in.StartAt.UTC()
	if err = hours.ValidateStart(start); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if !start.After(now) {
		return nil, fmt.Errorf("%w: start is in the past", domain.ErrInvalidSlot)
	}

	res := &domain.Reservation{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		TableRef:   in.TableRef,
		PartySize:  in.PartySize,
		StartAt:    start,
		TimeOfDay:  hours.LocalTimeOfDay(start),
		GuestName:  name,
		GuestPhone: phone,
		CreatedAt:  now,
	}
	if err = s.repo.Create(ctx, res); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlot) {
			metrics.DuplicateSlotTotal.Inc()
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if s.holds != nil {
		if err = s.holds.Release(ctx, res.TableRef, res.StartAt, res.UserID); err != nil {
			s.logger.Warn("failed to release slot hold",
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", res.ID),
		logger.Int64("user_id", res.UserID),
		logger.String("table", res.TableRef),
		logger.String("start_at", res.StartAt.Format(time.RFC3339)),
	)

	go s.notify(context.WithoutCancel(ctx), res, domain.TemplateConfirmed, domain.StaffEventConfirmed)

	return res, nil
}

// Book runs RequestBooking and Confirm in one step. A Suggested decision is
// returned with ErrSlotUnavailable so the caller can offer it.
func (s *ReservationService) Book(
	ctx context.Context,
	req domain.BookingRequest,
	guestName, guestPhone string,
) (*domain.Reservation, domain.Decision, error) {
	if _, err := NormalizeGuestName(guestName); err != nil {
		return nil, domain.Decision{}, err
	}
	if _, err := NormalizePhone(guestPhone); err != nil {
		return nil, domain.Decision{}, err
	}

	decision, err := s.RequestBooking(ctx, req)
	if err != nil {
		return nil, decision, err
	}
	if decision.Outcome == domain.OutcomeSuggested {
		return nil, decision, domain.ErrSlotUnavailable
	}

	res, err := s.Confirm(ctx, domain.ConfirmInput{
		UserID:     req.UserID,
		TableRef:   decision.TableRef,
		StartAt:    decision.StartAt,
		PartySize:  req.PartySize,
		GuestName:  guestName,
		GuestPhone: guestPhone,
	})
	if err != nil {
		return nil, decision, err
	}
	return res, decision, nil
}

// Cancel removes the guest's reservation and reports whether this call
// removed it. Cancelling an unknown or already removed reservation is a no-op.
func (s *ReservationService) Cancel(ctx context.Context, userID int64, id string) (bool, error) {
	res, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			s.logger.Debug("cancel of missing reservation ignored",
				logger.String("reservation_id", id),
			)
			return false, nil
		}
		return false, fmt.Errorf("get reservation: %w", err)
	}

	if res.UserID != userID {
		return false, domain.ErrReservationNotOwned
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete reservation: %w", err)
	}
	if !deleted {
		return false, nil
	}

	metrics.ReservationsCancelledTotal.Inc()
	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.Int64("user_id", userID),
	)

	go s.notify(context.WithoutCancel(ctx), res, domain.TemplateCancelled, domain.StaffEventCancelled)

	return true, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Available lists the future start times on date that still have a free
// table for the party.
func (s *ReservationService) Available(ctx context.Context, partySize int, date string) ([]time.Time, error) {
	existing, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}

	slots, err := s.alloc.Available(partySize, date, existing)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := slots[:0]
	for _, ts := range slots {
		if ts.After(now) {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (s *ReservationService) notify(ctx context.Context, res *domain.Reservation, tmpl domain.Template, event domain.StaffEvent) {
	params := domain.ParamsFor(res)

	if err := s.notifier.Notify(ctx, res.UserID, tmpl, params); err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(string(tmpl)).Inc()
		s.logger.Warn("failed to notify guest",
			logger.String("reservation_id", res.ID),
			logger.String("template", string(tmpl)),
			logger.String("error", err.Error()),
		)
	}

	if err := s.notifier.NotifyStaff(ctx, domain.StaffNotification{Event: event, NotificationParams: params}); err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues("staff_" + string(event)).Inc()
		s.logger.Warn("failed to notify staff",
			logger.String("reservation_id", res.ID),
			logger.String("error", err.Error()),
		)
	}
}

// NormalizeGuestName trims the name and checks it is usable.
func NormalizeGuestName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: guest name is required", domain.ErrValidation)
	}
	if len([]rune(name)) > maxGuestNameLen {
		return "", fmt.Errorf("%w: guest name is too long", domain.ErrValidation)
	}
	return name, nil
}

// NormalizePhone drops formatting characters and accepts 10 to 15 digits
// with an optional leading plus.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	if !phonePattern.MatchString(cleaned) {
		return "", fmt.Errorf("%w: phone %q must have 10-15 digits", domain.ErrValidation, phone)
	}
	return cleaned, nil
}
