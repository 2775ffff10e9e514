package ports

import (
	"context"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

// SlotHolder keeps a short-lived claim on a table interval while a guest
// finishes the dialogue. Holds are advisory; the store's write path stays
// authoritative.
type SlotHolder interface {
	// Hold fails when another guest holds an overlapping interval on the table.
	Hold(ctx context.Context, tableRef string, start time.Time, userID int64) (bool, error)
	Release(ctx context.Context, tableRef string, start time.Time, userID int64) error
	// Held lists live holds on the tables, leaving out those of exceptUserID.
	Held(ctx context.Context, tableRefs []string, exceptUserID int64) ([]domain.SlotHold, error)
}
