package ports

import (
	"context"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	ListActive(ctx context.Context) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetNotified(ctx context.Context, id string, which domain.Reminder) (bool, error)
}
