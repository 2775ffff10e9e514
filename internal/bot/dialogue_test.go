package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/bot/mocks"
	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const (
	chatID = int64(100)
	userID = int64(42)
)

var (
	msk     = time.FixedZone("MSK", 3*60*60)
	testNow = time.Date(2026, 10, 20, 7, 0, 0, 0, time.UTC)
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	l, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return l
}

func testHours() domain.OperatingHours {
	return domain.OperatingHours{
		Location: msk,
		Open:     9 * time.Hour,
		Close:    23 * time.Hour,
		Step:     30 * time.Minute,
		Duration: 2 * time.Hour,
		MinGap:   30 * time.Minute,
	}
}

func localAt(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, msk).UTC()
}

type dialogueFixture struct {
	dialogue *Dialogue
	bookings *mocks.MockBookingService
	store    *MemoryConversations
}

func newDialogue(t *testing.T) dialogueFixture {
	t.Helper()
	bookings := mocks.NewMockBookingService(t)
	store := NewMemoryConversations()
	texts := notification.NewTexts(testHours(), notification.Venue{Name: "Метеорит"})
	d := NewDialogue(bookings, store, texts, testHours(), 8, newTestLogger(t),
		WithDialogueClock(func() time.Time { return testNow }),
		WithBookingDays(14),
	)
	return dialogueFixture{dialogue: d, bookings: bookings, store: store}
}

func (f dialogueFixture) seed(t *testing.T, c Conversation) {
	t.Helper()
	require.NoError(t, f.store.Put(context.Background(), chatID, c))
}

func (f dialogueFixture) state(t *testing.T) Conversation {
	t.Helper()
	c, err := f.store.Get(context.Background(), chatID)
	require.NoError(t, err)
	return c
}

func (f dialogueFixture) text(t *testing.T, text string) []Reply {
	t.Helper()
	replies, err := f.dialogue.Handle(context.Background(), Input{ChatID: chatID, UserID: userID, Text: text})
	require.NoError(t, err)
	return replies
}

func (f dialogueFixture) press(t *testing.T, data string) []Reply {
	t.Helper()
	replies, err := f.dialogue.Handle(context.Background(), Input{ChatID: chatID, UserID: userID, Callback: data})
	require.NoError(t, err)
	return replies
}

func buttonData(rows [][]Button) []string {
	var out []string
	for _, row := range rows {
		for _, b := range row {
			out = append(out, b.Data)
		}
	}
	return out
}

func TestDialogue_Start(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepName, Date: "2026-10-21"})

	replies := f.text(t, "/start")

	require.Len(t, replies, 1)
	assert.Equal(t, msgWelcome, replies[0].Text)
	assert.True(t, replies[0].Menu)
	assert.Equal(t, Conversation{}, f.state(t))
}

func TestDialogue_FullBooking(t *testing.T) {
	f := newDialogue(t)

	replies := f.text(t, btnBook)
	require.Len(t, replies, 1)
	assert.Equal(t, msgChooseDate, replies[0].Text)
	dates := buttonData(replies[0].Inline)
	assert.Equal(t, "date:2026-10-20", dates[0])
	assert.Equal(t, "date:2026-11-02", dates[13])
	assert.Equal(t, cbAbort, dates[len(dates)-1])
	assert.Equal(t, StepDate, f.state(t).Step)

	replies = f.press(t, "date:2026-10-21")
	require.Len(t, replies, 1)
	assert.Equal(t, msgAskParty, replies[0].Text)
	assert.Equal(t, StepPartySize, f.state(t).Step)

	f.bookings.EXPECT().Available(mock.Anything, 4, "2026-10-21").
		Return([]time.Time{localAt(21, 18, 0), localAt(21, 19, 0)}, nil).Once()

	replies = f.press(t, "party:4")
	require.Len(t, replies, 1)
	assert.Equal(t, fmt.Sprintf(msgChooseTime, "21.10.2026"), replies[0].Text)
	assert.Equal(t, []string{"time:18:00", "time:19:00", cbAbort}, buttonData(replies[0].Inline))
	assert.Equal(t, StepTime, f.state(t).Step)

	f.bookings.EXPECT().RequestBooking(mock.Anything, domain.BookingRequest{
		UserID: userID, Date: "2026-10-21", Time: "19:00", PartySize: 4,
	}).Return(domain.Accepted("16", localAt(21, 19, 0), 5), nil).Once()

	replies = f.press(t, "time:19:00")
	require.Len(t, replies, 1)
	assert.Equal(t, fmt.Sprintf(msgAccepted, "16", "21.10.2026", "19:00"), replies[0].Text)
	assert.Equal(t, StepName, f.state(t).Step)

	replies = f.text(t, "  Анна ")
	require.Len(t, replies, 1)
	assert.Equal(t, msgAskPhone, replies[0].Text)
	assert.True(t, replies[0].AskContact)
	assert.Equal(t, "Анна", f.state(t).GuestName)

	f.bookings.EXPECT().Confirm(mock.Anything, domain.ConfirmInput{
		UserID:     userID,
		TableRef:   "16",
		StartAt:    localAt(21, 19, 0),
		PartySize:  4,
		GuestName:  "Анна",
		GuestPhone: "+79991234567",
	}).Return(&domain.Reservation{ID: "r-1"}, nil).Once()

	replies, err := f.dialogue.Handle(context.Background(), Input{ChatID: chatID, UserID: userID, Phone: "+79991234567"})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, msgBooked, replies[0].Text)
	assert.True(t, replies[0].Menu)
	assert.Equal(t, Conversation{}, f.state(t))
}

func TestDialogue_DateOutOfRange(t *testing.T) {
	for _, date := range []string{"2026-10-19", "2026-11-03", "garbage"} {
		t.Run(date, func(t *testing.T) {
			f := newDialogue(t)
			f.seed(t, Conversation{Step: StepDate})

			replies := f.press(t, cbDate+date)

			require.Len(t, replies, 1)
			assert.Equal(t, msgBadDate, replies[0].Text)
			assert.Equal(t, StepDate, f.state(t).Step)
		})
	}
}

func TestDialogue_PartySize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "not a number", input: "четверо", want: msgBadParty},
		{name: "zero", input: "0", want: msgBadParty},
		{name: "too many", input: "12", want: fmt.Sprintf(msgTooMany, 12, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDialogue(t)
			f.seed(t, Conversation{Step: StepPartySize, Date: "2026-10-21"})

			replies := f.text(t, tt.input)

			require.Len(t, replies, 1)
			assert.Equal(t, tt.want, replies[0].Text)
			assert.Equal(t, StepPartySize, f.state(t).Step)
		})
	}
}

func TestDialogue_SuggestsAlternative(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepTime, Date: "2026-10-21", PartySize: 2})

	f.bookings.EXPECT().RequestBooking(mock.Anything, mock.Anything).
		Return(domain.Suggested("23", localAt(21, 20, 30), 2), nil).Once()

	replies := f.press(t, "time:19:00")

	require.Len(t, replies, 1)
	assert.True(t, replies[0].Markdown)
	assert.Contains(t, replies[0].Text, "20:30")
	assert.Equal(t, []string{"time:20:30", "party:2", cbAbort}, buttonData(replies[0].Inline))
	assert.Equal(t, StepTime, f.state(t).Step)
}

func TestDialogue_DayFullyBooked(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepTime, Date: "2026-10-21", PartySize: 2})

	f.bookings.EXPECT().RequestBooking(mock.Anything, mock.Anything).
		Return(domain.Rejected(2), fmt.Errorf("table class 2: %w", domain.ErrNoAlternativeAvailable)).Once()

	replies := f.press(t, "time:22:00")

	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Text, "21.10.2026")
	assert.Equal(t, msgChooseDate, replies[1].Text)
	assert.Equal(t, StepDate, f.state(t).Step)
}

func TestDialogue_NoFreeTimes(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepPartySize, Date: "2026-10-21"})

	f.bookings.EXPECT().Available(mock.Anything, 3, "2026-10-21").Return(nil, nil).Once()

	replies := f.press(t, "party:3")

	require.Len(t, replies, 2)
	assert.Equal(t, msgChooseDate, replies[1].Text)
	assert.Equal(t, StepDate, f.state(t).Step)
}

func TestDialogue_SlotTakenOnConfirm(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{
		Step:      StepPhone,
		Date:      "2026-10-21",
		PartySize: 2,
		TableRef:  "23",
		StartAt:   localAt(21, 19, 0),
		GuestName: "Анна",
	})

	f.bookings.EXPECT().Confirm(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create reservation: %w", domain.ErrDuplicateSlot)).Once()
	f.bookings.EXPECT().Available(mock.Anything, 2, "2026-10-21").
		Return([]time.Time{localAt(21, 21, 0)}, nil).Once()

	replies := f.text(t, "8 (999) 123-45-67")

	require.Len(t, replies, 2)
	assert.Equal(t, msgSlotTaken, replies[0].Text)
	assert.Equal(t, []string{"time:21:00", cbAbort}, buttonData(replies[1].Inline))
	assert.Equal(t, StepTime, f.state(t).Step)
}

func TestDialogue_BadPhone(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepPhone, TableRef: "23", GuestName: "Анна"})

	replies := f.text(t, "12345")

	require.Len(t, replies, 1)
	assert.Equal(t, msgBadPhone, replies[0].Text)
	assert.True(t, replies[0].AskContact)
	assert.Equal(t, StepPhone, f.state(t).Step)
}

func TestDialogue_BadName(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepName})

	replies := f.text(t, "   ")

	require.Len(t, replies, 1)
	assert.Equal(t, msgBadName, replies[0].Text)
	assert.Equal(t, StepName, f.state(t).Step)
}

func TestDialogue_StaleCallback(t *testing.T) {
	f := newDialogue(t)

	replies := f.press(t, "time:19:00")

	require.Len(t, replies, 1)
	assert.Equal(t, msgStale, replies[0].Text)
}

func TestDialogue_TextWhileButtonsExpected(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepDate})

	replies := f.text(t, "завтра")

	require.Len(t, replies, 1)
	assert.Equal(t, msgUseButtons, replies[0].Text)
	assert.Equal(t, StepDate, f.state(t).Step)
}

func TestDialogue_Abort(t *testing.T) {
	f := newDialogue(t)
	f.seed(t, Conversation{Step: StepTime, Date: "2026-10-21", PartySize: 2})

	replies := f.press(t, cbAbort)

	require.Len(t, replies, 1)
	assert.Equal(t, msgAborted, replies[0].Text)
	assert.Equal(t, Conversation{}, f.state(t))
}

func TestDialogue_MyBookings(t *testing.T) {
	f := newDialogue(t)

	f.bookings.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Reservation{
		{ID: "r-1", TableRef: "16", PartySize: 4, StartAt: localAt(21, 19, 0), GuestName: "Анна"},
	}, nil).Once()

	replies := f.text(t, btnMyBookings)

	require.Len(t, replies, 2)
	assert.Equal(t, msgMyBookings, replies[0].Text)
	assert.Equal(t,
		fmt.Sprintf(msgBookingCard, "21.10.2026", "19:00", "16", 4, "Анна"),
		replies[1].Text)
	assert.Equal(t, []string{"cancel:r-1"}, buttonData(replies[1].Inline))
}

func TestDialogue_MyBookingsEmpty(t *testing.T) {
	f := newDialogue(t)

	f.bookings.EXPECT().ListByUser(mock.Anything, userID).Return(nil, nil).Once()

	replies := f.text(t, btnMyBookings)

	require.Len(t, replies, 1)
	assert.Equal(t, msgNoBookings, replies[0].Text)
}

func TestDialogue_Cancel(t *testing.T) {
	t.Run("success is reported by the notifier", func(t *testing.T) {
		f := newDialogue(t)
		f.bookings.EXPECT().Cancel(mock.Anything, userID, "r-1").Return(true, nil).Once()

		assert.Empty(t, f.press(t, "cancel:r-1"))
	})

	t.Run("second tap on a removed reservation", func(t *testing.T) {
		f := newDialogue(t)
		f.bookings.EXPECT().Cancel(mock.Anything, userID, "r-1").Return(false, nil).Once()

		replies := f.press(t, "cancel:r-1")

		require.Len(t, replies, 1)
		assert.Equal(t, msgGone, replies[0].Text)
	})

	t.Run("foreign reservation", func(t *testing.T) {
		f := newDialogue(t)
		f.bookings.EXPECT().Cancel(mock.Anything, userID, "r-2").Return(false, domain.ErrReservationNotOwned).Once()

		replies := f.press(t, "cancel:r-2")

		require.Len(t, replies, 1)
		assert.Equal(t, msgNotOwned, replies[0].Text)
	})
}

func TestDialogue_ServiceFailure(t *testing.T) {
	f := newDialogue(t)

	f.bookings.EXPECT().ListByUser(mock.Anything, userID).Return(nil, errors.New("connection refused")).Once()

	_, err := f.dialogue.Handle(context.Background(), Input{ChatID: chatID, UserID: userID, Text: btnMyBookings})

	assert.ErrorContains(t, err, "connection refused")
}
