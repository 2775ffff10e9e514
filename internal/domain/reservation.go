package domain

import "time"

// Stage is the lifecycle position of a stored reservation. Expired and
// cancelled reservations are deleted, so they never appear on a record.
type Stage string

const (
	StageConfirmed  Stage = "confirmed"
	StageReminded24 Stage = "reminded_24h"
	StageReminded12 Stage = "reminded_12h"
)

// Reminder identifies one of the two reminder horizons.
type Reminder int

const (
	Reminder24h Reminder = 24
	Reminder12h Reminder = 12
)

func (r Reminder) String() string {
	switch r {
	case Reminder24h:
		return "24h"
	case Reminder12h:
		return "12h"
	default:
		return "unknown"
	}
}

type Reservation struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	TableRef    string    `json:"table_ref"`
	PartySize   int       `json:"party_size"`
	StartAt     time.Time `json:"start_at"`
	TimeOfDay   string    `json:"time_of_day"`
	GuestName   string    `json:"guest_name"`
	GuestPhone  string    `json:"guest_phone"`
	CreatedAt   time.Time `json:"created_at"`
	Notified24h bool      `json:"notified_24h"`
	Notified12h bool      `json:"notified_12h"`
}

// SlotHold is a short-lived claim on a table interval taken while a guest
// finishes the dialogue.
type SlotHold struct {
	TableRef string
	StartAt  time.Time
	UserID   int64
}

// AsReservation lets the allocator count a hold as an occupied interval.
func (h SlotHold) AsReservation() *Reservation {
	return &Reservation{
		ID:       "hold:" + h.TableRef + ":" + h.StartAt.UTC().Format(time.RFC3339),
		UserID:   h.UserID,
		TableRef: h.TableRef,
		StartAt:  h.StartAt,
	}
}

// EndAt returns the exclusive end of the reservation interval.
func (r *Reservation) EndAt(duration time.Duration) time.Time {
	return r.StartAt.Add(duration)
}

func (r *Reservation) Stage() Stage {
	switch {
	case r.Notified12h:
		return StageReminded12
	case r.Notified24h:
		return StageReminded24
	default:
		return StageConfirmed
	}
}

// Notified reports whether the reminder for the given horizon was already sent.
func (r *Reservation) Notified(which Reminder) bool {
	if which == Reminder12h {
		return r.Notified12h
	}
	return r.Notified24h
}

// BookingRequest is what the dialogue collects before asking the allocator.
type BookingRequest struct {
	UserID    int64
	Date      string // YYYY-MM-DD in venue local time
	Time      string // HH:MM in venue local time
	PartySize int
}

// ConfirmInput carries an accepted slot plus the guest's contact details.
type ConfirmInput struct {
	UserID     int64
	TableRef   string
	StartAt    time.Time
	PartySize  int
	GuestName  string
	GuestPhone string
}
