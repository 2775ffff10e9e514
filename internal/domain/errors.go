package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
)

// Allocation and persistence errors. They are recovered at the dialogue
// boundary and turned into a re-prompt.
var (
	ErrInvalidPartySize       = errors.New("party size exceeds every table capacity")
	ErrInvalidSlot            = errors.New("requested time is outside operating hours")
	ErrDuplicateSlot          = errors.New("slot was just taken")
	ErrSlotUnavailable        = errors.New("requested slot is taken")
	ErrNoAlternativeAvailable = errors.New("no availability on this day")
	ErrReservationNotOwned    = errors.New("reservation belongs to another guest")
)

var (
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)

var (
	ErrValidation = errors.New("validation error")
)
