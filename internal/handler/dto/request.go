package dto

type AvailabilityRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,gt=0"`
}

type CreateReservationRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	PartySize  int    `json:"party_size" binding:"required,gt=0"`
	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone" binding:"required"`
}

type CancelRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

type SlotsQuery struct {
	Date      string `form:"date" binding:"required"`
	PartySize int    `form:"party_size" binding:"required,gt=0"`
}
