package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/service"
	"github.com/wb-go/wbf/logger"
)

const defaultBookingDays = 14

type bookingService interface {
	RequestBooking(ctx context.Context, req domain.BookingRequest) (domain.Decision, error)
	Confirm(ctx context.Context, in domain.ConfirmInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, userID int64, id string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	Available(ctx context.Context, partySize int, date string) ([]time.Time, error)
}

type renderer interface {
	Render(tmpl domain.Template, p domain.NotificationParams) (string, error)
}

// Input is one guest action: a text, a shared contact or a button press.
type Input struct {
	ChatID   int64
	UserID   int64
	Text     string
	Phone    string
	Callback string
}

// Dialogue walks a guest through date, party size, time, name and phone.
// It keeps no state of its own; everything lives in the ConversationStore.
type Dialogue struct {
	bookings bookingService
	store    ConversationStore
	texts    renderer
	hours    domain.OperatingHours
	maxParty int
	days     int
	logger   logger.Logger
	now      func() time.Time
}

type DialogueOption func(*Dialogue)

func WithBookingDays(days int) DialogueOption {
	return func(d *Dialogue) {
		if days > 0 {
			d.days = days
		}
	}
}

func WithDialogueClock(now func() time.Time) DialogueOption {
	return func(d *Dialogue) {
		d.now = now
	}
}

func NewDialogue(
	bookings bookingService,
	store ConversationStore,
	texts renderer,
	hours domain.OperatingHours,
	maxParty int,
	logger logger.Logger,
	opts ...DialogueOption,
) *Dialogue {
	d := &Dialogue{
		bookings: bookings,
		store:    store,
		texts:    texts,
		hours:    hours,
		maxParty: maxParty,
		days:     defaultBookingDays,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle applies one input to the chat's conversation and returns what to
// send back. Errors are infrastructure failures; guest mistakes come back as
// re-prompts.
func (d *Dialogue) Handle(ctx context.Context, in Input) ([]Reply, error) {
	conv, err := d.store.Get(ctx, in.ChatID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	replies, err := d.route(ctx, in, &conv)
	if err != nil {
		return nil, err
	}

	if conv.Step == StepIdle {
		err = d.store.Delete(ctx, in.ChatID)
	} else {
		err = d.store.Put(ctx, in.ChatID, conv)
	}
	if err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}

	return replies, nil
}

func (d *Dialogue) route(ctx context.Context, in Input, conv *Conversation) ([]Reply, error) {
	if in.Callback != "" {
		return d.onCallback(ctx, in, conv)
	}

	text := strings.TrimSpace(in.Text)
	switch text {
	case cmdStart:
		conv.reset()
		return []Reply{{Text: msgWelcome, Menu: true}}, nil
	case btnBook:
		return d.startBooking(conv), nil
	case btnMyBookings:
		conv.reset()
		return d.listBookings(ctx, in.UserID)
	}

	switch conv.Step {
	case StepPartySize:
		return d.onPartySize(ctx, conv, text)
	case StepName:
		return d.onName(conv, text), nil
	case StepPhone:
		phone := in.Phone
		if phone == "" {
			phone = text
		}
		return d.onPhone(ctx, in.UserID, conv, phone)
	case StepDate, StepTime:
		return []Reply{{Text: msgUseButtons}}, nil
	}

	return []Reply{{Text: msgWelcome, Menu: true}}, nil
}

func (d *Dialogue) onCallback(ctx context.Context, in Input, conv *Conversation) ([]Reply, error) {
	data := in.Callback

	switch {
	case data == cbAbort:
		conv.reset()
		return []Reply{{Text: msgAborted, Menu: true}}, nil

	case strings.HasPrefix(data, cbCancel):
		return d.cancel(ctx, in.UserID, strings.TrimPrefix(data, cbCancel))

	case strings.HasPrefix(data, cbDate) && conv.Step == StepDate:
		return d.onDate(conv, strings.TrimPrefix(data, cbDate)), nil

	case strings.HasPrefix(data, cbParty) && (conv.Step == StepPartySize || conv.Step == StepTime):
		return d.onPartySize(ctx, conv, strings.TrimPrefix(data, cbParty))

	case strings.HasPrefix(data, cbTime) && conv.Step == StepTime:
		return d.onTime(ctx, in.UserID, conv, strings.TrimPrefix(data, cbTime))
	}

	return []Reply{{Text: msgStale}}, nil
}

func (d *Dialogue) startBooking(conv *Conversation) []Reply {
	conv.reset()
	conv.Step = StepDate
	return []Reply{{Text: msgChooseDate, Inline: dateKeyboard(d.hours, d.now(), d.days)}}
}

func (d *Dialogue) onDate(conv *Conversation, date string) []Reply {
	day, err := time.ParseInLocation(domain.DateLayout, date, d.hours.Location)
	first := d.hours.Local(d.now()).Format(domain.DateLayout)
	last := d.hours.Local(d.now()).AddDate(0, 0, d.days-1).Format(domain.DateLayout)
	if err != nil || date < first || date > last {
		return []Reply{{Text: msgBadDate, Inline: dateKeyboard(d.hours, d.now(), d.days)}}
	}

	conv.Date = day.Format(domain.DateLayout)
	conv.Step = StepPartySize
	return []Reply{{Text: msgAskParty, Inline: partyKeyboard(d.maxParty)}}
}

func (d *Dialogue) onPartySize(ctx context.Context, conv *Conversation, raw string) ([]Reply, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return []Reply{{Text: msgBadParty, Inline: partyKeyboard(d.maxParty)}}, nil
	}
	if n > d.maxParty {
		return []Reply{{Text: fmt.Sprintf(msgTooMany, n, d.maxParty), Inline: partyKeyboard(d.maxParty)}}, nil
	}

	conv.PartySize = n
	conv.Step = StepPartySize
	return d.offerTimes(ctx, conv, "")
}

// offerTimes lists the free starts for the chosen date and party size, or
// sends the guest back to the date picker when the day is full.
func (d *Dialogue) offerTimes(ctx context.Context, conv *Conversation, prefix string) ([]Reply, error) {
	slots, err := d.bookings.Available(ctx, conv.PartySize, conv.Date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPartySize) {
			conv.Step = StepPartySize
			return []Reply{{Text: fmt.Sprintf(msgTooMany, conv.PartySize, d.maxParty), Inline: partyKeyboard(d.maxParty)}}, nil
		}
		return nil, fmt.Errorf("list available slots: %w", err)
	}

	var replies []Reply
	if prefix != "" {
		replies = append(replies, Reply{Text: prefix})
	}

	if len(slots) == 0 {
		return append(replies, d.rejected(conv)...), nil
	}

	conv.Step = StepTime
	day, _ := time.ParseInLocation(domain.DateLayout, conv.Date, d.hours.Location)
	return append(replies, Reply{
		Text:   fmt.Sprintf(msgChooseTime, day.Format(displayDate)),
		Inline: timeKeyboard(d.hours, slots),
	}), nil
}

func (d *Dialogue) onTime(ctx context.Context, userID int64, conv *Conversation, tod string) ([]Reply, error) {
	decision, err := d.bookings.RequestBooking(ctx, domain.BookingRequest{
		UserID:    userID,
		Date:      conv.Date,
		Time:      tod,
		PartySize: conv.PartySize,
	})
	switch {
	case errors.Is(err, domain.ErrNoAlternativeAvailable):
		return d.rejected(conv), nil
	case errors.Is(err, domain.ErrInvalidSlot), errors.Is(err, domain.ErrValidation):
		return d.offerTimes(ctx, conv, msgSlotGone)
	case errors.Is(err, domain.ErrInvalidPartySize):
		conv.Step = StepPartySize
		return []Reply{{Text: fmt.Sprintf(msgTooMany, conv.PartySize, d.maxParty), Inline: partyKeyboard(d.maxParty)}}, nil
	case err != nil:
		return nil, fmt.Errorf("request booking: %w", err)
	}

	if decision.Outcome == domain.OutcomeSuggested {
		alt := d.hours.LocalTimeOfDay(decision.StartAt)
		text, err := d.texts.Render(domain.TemplateSuggestion, domain.NotificationParams{
			TableRef:  decision.TableRef,
			PartySize: conv.PartySize,
			StartAt:   decision.StartAt,
		})
		if err != nil {
			return nil, err
		}
		return []Reply{{
			Text:     text,
			Markdown: true,
			Inline: [][]Button{
				{{Text: fmt.Sprintf(msgAcceptAlt, alt), Data: cbTime + alt}},
				{{Text: msgAnotherTime, Data: cbParty + strconv.Itoa(conv.PartySize)}},
				abortRow(),
			},
		}}, nil
	}

	conv.TableRef = decision.TableRef
	conv.StartAt = decision.StartAt
	conv.Step = StepName

	d.logger.Debug("slot accepted in dialogue",
		logger.Int64("user_id", userID),
		logger.String("table", decision.TableRef),
	)

	local := d.hours.Local(decision.StartAt)
	return []Reply{{
		Text: fmt.Sprintf(msgAccepted, decision.TableRef, local.Format(displayDate), local.Format(domain.TimeLayout)),
	}}, nil
}

func (d *Dialogue) onName(conv *Conversation, text string) []Reply {
	name, err := service.NormalizeGuestName(text)
	if err != nil {
		return []Reply{{Text: msgBadName}}
	}

	conv.GuestName = name
	conv.Step = StepPhone
	return []Reply{{Text: msgAskPhone, AskContact: true}}
}

func (d *Dialogue) onPhone(ctx context.Context, userID int64, conv *Conversation, phone string) ([]Reply, error) {
	if _, err := service.NormalizePhone(phone); err != nil {
		return []Reply{{Text: msgBadPhone, AskContact: true}}, nil
	}

	_, err := d.bookings.Confirm(ctx, domain.ConfirmInput{
		UserID:     userID,
		TableRef:   conv.TableRef,
		StartAt:    conv.StartAt,
		PartySize:  conv.PartySize,
		GuestName:  conv.GuestName,
		GuestPhone: phone,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateSlot):
		return d.offerTimes(ctx, conv, msgSlotTaken)
	case errors.Is(err, domain.ErrInvalidSlot):
		return d.offerTimes(ctx, conv, msgSlotGone)
	case err != nil:
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	conv.reset()
	return []Reply{{Text: msgBooked, Menu: true}}, nil
}

func (d *Dialogue) rejected(conv *Conversation) []Reply {
	text, err := d.texts.Render(domain.TemplateRejected, domain.NotificationParams{
		PartySize: conv.PartySize,
		StartAt:   d.dayStart(conv.Date),
	})
	if err != nil {
		text = msgBadDate
	}

	conv.Step = StepDate
	return []Reply{
		{Text: text, Markdown: true},
		{Text: msgChooseDate, Inline: dateKeyboard(d.hours, d.now(), d.days)},
	}
}

func (d *Dialogue) listBookings(ctx context.Context, userID int64) ([]Reply, error) {
	list, err := d.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(list) == 0 {
		return []Reply{{Text: msgNoBookings, Menu: true}}, nil
	}

	replies := []Reply{{Text: msgMyBookings, Menu: true}}
	for _, r := range list {
		local := d.hours.Local(r.StartAt)
		replies = append(replies, Reply{
			Text: fmt.Sprintf(msgBookingCard,
				local.Format(displayDate), local.Format(domain.TimeLayout), r.TableRef, r.PartySize, r.GuestName),
			Inline: [][]Button{{{Text: btnCancel, Data: cbCancel + r.ID}}},
		})
	}
	return replies, nil
}

// cancel leaves the confirmation to the notifier, so a successful cancel has
// no direct reply. A repeated tap on a removed booking gets a short answer.
func (d *Dialogue) cancel(ctx context.Context, userID int64, id string) ([]Reply, error) {
	cancelled, err := d.bookings.Cancel(ctx, userID, id)
	if errors.Is(err, domain.ErrReservationNotOwned) {
		return []Reply{{Text: msgNotOwned}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if !cancelled {
		return []Reply{{Text: msgGone}}, nil
	}
	return nil, nil
}

func (d *Dialogue) dayStart(date string) time.Time {
	ts, err := d.hours.Combine(date, domain.FormatTimeOfDay(d.hours.Open))
	if err != nil {
		return d.now()
	}
	return ts
}
