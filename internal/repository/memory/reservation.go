// Package memory is an in-process reservation store. It backs the
// "memory" storage driver and the lifecycle tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

type ReservationStore struct {
	mu       sync.Mutex
	items    map[string]domain.Reservation
	duration time.Duration
}

func NewReservationStore(duration time.Duration) *ReservationStore {
	return &ReservationStore{
		items:    make(map[string]domain.Reservation),
		duration: duration,
	}
}

func (s *ReservationStore) Create(_ context.Context, r *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[r.ID]; exists {
		return domain.ErrDuplicateSlot
	}
	for _, other := range s.items {
		if other.TableRef != r.TableRef {
			continue
		}
		if domain.Overlaps(r.StartAt, r.EndAt(s.duration), other.StartAt, other.EndAt(s.duration)) {
			return domain.ErrDuplicateSlot
		}
	}

	stored := *r
	stored.StartAt = stored.StartAt.UTC()
	stored.CreatedAt = stored.CreatedAt.UTC()
	s.items[r.ID] = stored
	return nil
}

func (s *ReservationStore) Get(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return &r, nil
}

func (s *ReservationStore) ListByUser(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Reservation
	for _, r := range s.items {
		if r.UserID == userID {
			r := r
			out = append(out, &r)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *ReservationStore) ListActive(_ context.Context) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Reservation, 0, len(s.items))
	for _, r := range s.items {
		r := r
		out = append(out, &r)
	}
	sortByStart(out)
	return out, nil
}

func (s *ReservationStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *ReservationStore) SetNotified(_ context.Context, id string, which domain.Reminder) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok || r.Notified(which) {
		return false, nil
	}
	switch which {
	case domain.Reminder24h:
		r.Notified24h = true
	case domain.Reminder12h:
		r.Notified12h = true
	default:
		return false, domain.ErrValidation
	}
	s.items[id] = r
	return true, nil
}

func sortByStart(rs []*domain.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].StartAt.Equal(rs[j].StartAt) {
			return rs[i].TableRef < rs[j].TableRef
		}
		return rs[i].StartAt.Before(rs[j].StartAt)
	})
}
