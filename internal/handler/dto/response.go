package dto

import (
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
)

type DecisionResponse struct {
	Outcome  string `json:"outcome"`
	TableRef string `json:"table_ref,omitempty"`
	StartAt  string `json:"start_at,omitempty"`
	Capacity int    `json:"capacity"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	UserID      int64  `json:"user_id"`
	TableRef    string `json:"table_ref"`
	PartySize   int    `json:"party_size"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	GuestName   string `json:"guest_name"`
	GuestPhone  string `json:"guest_phone"`
	Stage       string `json:"stage"`
	Notified24h bool   `json:"notified_24h"`
	Notified12h bool   `json:"notified_12h"`
	CreatedAt   string `json:"created_at"`
}

type TableClassResponse struct {
	Capacity int      `json:"capacity"`
	Tables   []string `json:"tables"`
}

type SlotsResponse struct {
	Date      string   `json:"date"`
	PartySize int      `json:"party_size"`
	Times     []string `json:"times"`
}

type ConflictResponse struct {
	Error      string            `json:"error"`
	Suggestion *DecisionResponse `json:"suggestion,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDecisionResponse renders times in venue local time with the offset, so
// clients never need the venue timezone.
func ToDecisionResponse(d domain.Decision, hours domain.OperatingHours) DecisionResponse {
	resp := DecisionResponse{
		Outcome:  string(d.Outcome),
		TableRef: d.TableRef,
		Capacity: d.Capacity,
	}
	if !d.StartAt.IsZero() {
		resp.StartAt = hours.Local(d.StartAt).Format(time.RFC3339)
	}
	return resp
}

func ToReservationResponse(r *domain.Reservation, hours domain.OperatingHours) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		TableRef:    r.TableRef,
		PartySize:   r.PartySize,
		StartAt:     hours.Local(r.StartAt).Format(time.RFC3339),
		EndAt:       hours.Local(r.EndAt(hours.Duration)).Format(time.RFC3339),
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		Stage:       string(r.Stage()),
		Notified24h: r.Notified24h,
		Notified12h: r.Notified12h,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToTableClassResponses(classes []domain.TableClass) []TableClassResponse {
	resp := make([]TableClassResponse, 0, len(classes))
	for _, c := range classes {
		resp = append(resp, TableClassResponse{Capacity: c.Capacity, Tables: c.Tables})
	}
	return resp
}
