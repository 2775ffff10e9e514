// Package allocator decides which table can take a requested start time.
//
// The allocator holds no mutable state: callers pass in the active
// reservations they read from the store and apply the returned decision
// themselves, so an Allocator is safe for concurrent use.
package allocator

import (
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

type Allocator struct {
	inventory *domain.Inventory
	hours     domain.OperatingHours
}

func New(inventory *domain.Inventory, hours domain.OperatingHours) *Allocator {
	return &Allocator{
		inventory: inventory,
		hours:     hours,
	}
}

func (a *Allocator) Inventory() *domain.Inventory {
	return a.inventory
}

func (a *Allocator) Hours() domain.OperatingHours {
	return a.hours
}

// Allocate resolves the capacity class for partySize and delegates to
// CheckAndAllocate.
func (a *Allocator) Allocate(partySize int, start time.Time, existing []*domain.Reservation) (domain.Decision, error) {
	class, err := a.inventory.ClassFor(partySize)
	if err != nil {
		return domain.Decision{}, err
	}
	return a.CheckAndAllocate(class, start, existing)
}

// CheckAndAllocate returns Accepted for the first table of the class that is
// free at start, otherwise the earliest later slot on the same day as
// Suggested, otherwise Rejected.
func (a *Allocator) CheckAndAllocate(class domain.TableClass, start time.Time, existing []*domain.Reservation) (domain.Decision, error) {
	start = start.UTC()
	if err := a.hours.ValidateStart(start); err != nil {
		return domain.Decision{}, err
	}

	busy := a.occupancy(class, start, existing)
	end := start.Add(a.hours.Duration)

	for _, table := range class.Tables {
		if len(a.conflicts(busy[table], start, end)) == 0 {
			return domain.Accepted(table, start, class.Capacity), nil
		}
	}

	table, alt, ok := a.searchForward(class, start, busy)
	if !ok {
		return domain.Rejected(class.Capacity), nil
	}
	return domain.Suggested(table, alt, class.Capacity), nil
}

// Available lists the start times on a local date where at least one table
// of the party's class is free.
func (a *Allocator) Available(partySize int, date string, existing []*domain.Reservation) ([]time.Time, error) {
	class, err := a.inventory.ClassFor(partySize)
	if err != nil {
		return nil, err
	}

	var out []time.Time
	for _, tod := range a.hours.Slots() {
		start, err := a.hours.Combine(date, tod)
		if err != nil {
			return nil, err
		}
		busy := a.occupancy(class, start, existing)
		end := start.Add(a.hours.Duration)
		for _, table := range class.Tables {
			if len(a.conflicts(busy[table], start, end)) == 0 {
				out = append(out, start)
				break
			}
		}
	}
	return out, nil
}

// searchForward walks each table in grid steps until closing, starting no
// earlier than the requested end and no earlier than the last blocking
// reservation's end plus the minimum gap, and keeps the earliest feasible
// start.
func (a *Allocator) searchForward(
	class domain.TableClass,
	start time.Time,
	busy map[string][]*domain.Reservation,
) (string, time.Time, bool) {
	last := a.hours.LastStart(start)
	end := start.Add(a.hours.Duration)

	var (
		bestTable string
		bestStart time.Time
		found     bool
	)

	for _, table := range class.Tables {
		blockedUntil := end
		for _, r := range a.conflicts(busy[table], start, end) {
			if e := r.EndAt(a.hours.Duration).Add(a.hours.MinGap); e.After(blockedUntil) {
				blockedUntil = e
			}
		}

		for c := a.hours.CeilToGrid(blockedUntil); !c.After(last); c = c.Add(a.hours.Step) {
			if found && !c.Before(bestStart) {
				break
			}
			if len(a.conflicts(busy[table], c, c.Add(a.hours.Duration))) == 0 {
				bestTable, bestStart, found = table, c, true
				break
			}
		}
	}

	return bestTable, bestStart, found
}

// occupancy groups the reservations of the class's tables that fall on the
// same local date as start.
func (a *Allocator) occupancy(class domain.TableClass, start time.Time, existing []*domain.Reservation) map[string][]*domain.Reservation {
	busy := make(map[string][]*domain.Reservation, len(class.Tables))
	for _, t := range class.Tables {
		busy[t] = nil
	}
	for _, r := range existing {
		if _, ok := busy[r.TableRef]; !ok {
			continue
		}
		if !a.hours.SameLocalDay(r.StartAt, start) {
			continue
		}
		busy[r.TableRef] = append(busy[r.TableRef], r)
	}
	return busy
}

func (a *Allocator) conflicts(rs []*domain.Reservation, start, end time.Time) []*domain.Reservation {
	var out []*domain.Reservation
	for _, r := range rs {
		if domain.Overlaps(start, end, r.StartAt, r.EndAt(a.hours.Duration)) {
			out = append(out, r)
		}
	}
	return out
}
