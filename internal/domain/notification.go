package domain

import "time"

// Template names a guest-facing message. The core decides that and what to
// notify; the sink decides how it looks.
type Template string

const (
	TemplateConfirmed  Template = "confirmed"
	TemplateReminder   Template = "reminder"
	TemplatePostVisit  Template = "post_visit"
	TemplateCancelled  Template = "cancelled"
	TemplateSuggestion Template = "suggestion"
	TemplateRejected   Template = "rejected"
)

// StaffEvent is what the staff channel is told about.
type StaffEvent string

const (
	StaffEventConfirmed StaffEvent = "confirmed"
	StaffEventCancelled StaffEvent = "cancelled"
)

// NotificationParams carries the values a template may render. Times are UTC;
// the sink converts them for display.
type NotificationParams struct {
	ReservationID string
	TableRef      string
	PartySize     int
	StartAt       time.Time
	GuestName     string
	GuestPhone    string
	Horizon       Reminder
}

// ParamsFor fills NotificationParams from a stored reservation.
func ParamsFor(r *Reservation) NotificationParams {
	return NotificationParams{
		ReservationID: r.ID,
		TableRef:      r.TableRef,
		PartySize:     r.PartySize,
		StartAt:       r.StartAt,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
	}
}

type StaffNotification struct {
	Event StaffEvent
	NotificationParams
}
