package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Check(ctx context.Context, req domain.BookingRequest) (domain.Decision, error)
	Book(ctx context.Context, req domain.BookingRequest, guestName, guestPhone string) (*domain.Reservation, domain.Decision, error)
	Cancel(ctx context.Context, userID int64, id string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	Available(ctx context.Context, partySize int, date string) ([]time.Time, error)
	Inventory() *domain.Inventory
	Hours() domain.OperatingHours
}

type Handler struct {
	reservationService ReservationSvc
}

func NewHandler(reservationService ReservationSvc) *Handler {
	return &Handler{reservationService: reservationService}
}

// Availability asks the allocator without booking or holding anything.
func (h *Handler) Availability(c *ginext.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	decision, err := h.reservationService.Check(c.Request.Context(), domain.BookingRequest{
		UserID:    req.UserID,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
	})
	if err != nil && !errors.Is(err, domain.ErrNoAlternativeAvailable) {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDecisionResponse(decision, h.reservationService.Hours()))
}

func (h *Handler) Slots(c *ginext.Context) {
	var q dto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slots, err := h.reservationService.Available(c.Request.Context(), q.PartySize, q.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	hours := h.reservationService.Hours()
	times := make([]string, 0, len(slots))
	for _, ts := range slots {
		times = append(times, hours.LocalTimeOfDay(ts))
	}

	c.JSON(http.StatusOK, dto.SlotsResponse{Date: q.Date, PartySize: q.PartySize, Times: times})
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, decision, err := h.reservationService.Book(c.Request.Context(), domain.BookingRequest{
		UserID:    req.UserID,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
	}, req.GuestName, req.GuestPhone)
	if errors.Is(err, domain.ErrSlotUnavailable) {
		c.Set("error", err.Error())
		suggestion := dto.ToDecisionResponse(decision, h.reservationService.Hours())
		c.JSON(http.StatusConflict, dto.ConflictResponse{Error: err.Error(), Suggestion: &suggestion})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res, h.reservationService.Hours()))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cancelled, err := h.reservationService.Cancel(c.Request.Context(), req.UserID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := "cancelled"
	if !cancelled {
		status = "already_cancelled"
	}
	c.JSON(http.StatusOK, ginext.H{"status": status})
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	list, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	hours := h.reservationService.Hours()
	resp := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.ToReservationResponse(r, hours))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetInventory(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToTableClassResponses(h.reservationService.Inventory().Classes()))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotOwned):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateSlot),
		errors.Is(err, domain.ErrNoAlternativeAvailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidPartySize):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
