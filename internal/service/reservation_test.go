package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/allocator"
	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/repository/memory"
	"github.com/IXIIIK/meteorit-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var msk = time.FixedZone("MSK", 3*60*60)

// 10:00 in the venue
var testNow = time.Date(2026, 10, 20, 7, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
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

func newTestAllocator(t *testing.T) *allocator.Allocator {
	t.Helper()
	inv, err := domain.NewInventory([]domain.TableClass{
		{Capacity: 2, Tables: []string{"23"}},
		{Capacity: 3, Tables: []string{"17", "18"}},
		{Capacity: 6, Tables: []string{"13"}},
	})
	require.NoError(t, err)
	return allocator.New(inv, testHours())
}

func localAt(t *testing.T, date, tod string) time.Time {
	t.Helper()
	ts, err := testHours().Combine(date, tod)
	require.NoError(t, err)
	return ts
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestReservationService_RequestBooking_AcceptedIsHeld(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	start := localAt(t, "2026-10-20", "19:00")
	repo.EXPECT().ListActive(mock.Anything).Return(nil, nil)
	holds.EXPECT().Held(mock.Anything, []string{"13"}, int64(42)).Return(nil, nil)
	holds.EXPECT().Hold(mock.Anything, "13", start, int64(42)).Return(true, nil)

	d, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:00", PartySize: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, d.Outcome)
	assert.Equal(t, "13", d.TableRef)
	assert.Equal(t, start, d.StartAt)
}

func TestReservationService_RequestBooking_SkipsTableHeldByAnotherGuest(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	start := localAt(t, "2026-10-20", "19:00")
	repo.EXPECT().ListActive(mock.Anything).Return(nil, nil)
	holds.EXPECT().Held(mock.Anything, []string{"17", "18"}, int64(42)).Return(nil, nil)
	holds.EXPECT().Hold(mock.Anything, "17", start, int64(42)).Return(false, nil)
	holds.EXPECT().Hold(mock.Anything, "18", start, int64(42)).Return(true, nil)

	d, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:00", PartySize: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, d.Outcome)
	assert.Equal(t, "18", d.TableRef)
}

func TestReservationService_RequestBooking_AvoidsOverlappingHold(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	// another guest is mid-dialogue on 13 at 19:00
	repo.EXPECT().ListActive(mock.Anything).Return(nil, nil)
	holds.EXPECT().Held(mock.Anything, []string{"13"}, int64(42)).Return([]domain.SlotHold{
		{TableRef: "13", StartAt: localAt(t, "2026-10-20", "19:00"), UserID: 7},
	}, nil)

	d, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:30", PartySize: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuggested, d.Outcome)
	assert.Equal(t, "13", d.TableRef)
	assert.Equal(t, localAt(t, "2026-10-20", "21:30"), d.StartAt)
	holds.AssertNotCalled(t, "Hold", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService_Check_DoesNotHold(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().ListActive(mock.Anything).Return(nil, nil)
	holds.EXPECT().Held(mock.Anything, []string{"13"}, int64(42)).Return(nil, nil)

	d, err := svc.Check(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:00", PartySize: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, d.Outcome)
	assert.Equal(t, "13", d.TableRef)
	holds.AssertNotCalled(t, "Hold", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService_RequestBooking_HoldErrorKeepsDecision(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().ListActive(mock.Anything).Return(nil, nil)
	holds.EXPECT().Held(mock.Anything, []string{"23"}, int64(42)).Return(nil, errors.New("redis down"))
	holds.EXPECT().Hold(mock.Anything, "23", mock.Anything, int64(42)).Return(false, errors.New("redis down"))

	d, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "12:00", PartySize: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, d.Outcome)
	assert.Equal(t, "23", d.TableRef)
}

func TestReservationService_RequestBooking_SuggestsAlternative(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().ListActive(mock.Anything).Return([]*domain.Reservation{
		{ID: "r1", TableRef: "13", StartAt: localAt(t, "2026-10-20", "18:00")},
	}, nil)

	d, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:00", PartySize: 6,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuggested, d.Outcome)
	assert.Equal(t, localAt(t, "2026-10-20", "21:00"), d.StartAt)
}

func TestReservationService_RequestBooking_Rejected(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().ListActive(mock.Anything).Return([]*domain.Reservation{
		{ID: "r1", TableRef: "13", StartAt: localAt(t, "2026-10-20", "21:30")},
	}, nil)
	holds.EXPECT().Held(mock.Anything, []string{"13"}, int64(42)).Return(nil, nil)

	d, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "22:00", PartySize: 6,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAlternativeAvailable)
	assert.Equal(t, domain.OutcomeRejected, d.Outcome)
}

func TestReservationService_RequestBooking_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.BookingRequest
		wantErr error
	}{
		{
			name:    "past start",
			req:     domain.BookingRequest{UserID: 42, Date: "2026-10-20", Time: "09:30", PartySize: 2},
			wantErr: domain.ErrInvalidSlot,
		},
		{
			name:    "bad date",
			req:     domain.BookingRequest{UserID: 42, Date: "20.10.2026", Time: "19:00", PartySize: 2},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)
			svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

			_, err := svc.RequestBooking(context.Background(), tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReservationService_RequestBooking_PartyTooLarge(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	_, err := svc.RequestBooking(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:00", PartySize: 9,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPartySize)
}

func TestReservationService_Confirm_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	start := localAt(t, "2026-10-20", "19:00")
	staffDone := make(chan struct{})

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.TableRef == "13" && r.StartAt.Equal(start) && r.GuestPhone == "+79991234567"
	})).Return(nil)
	holds.EXPECT().Release(mock.Anything, "13", start, int64(42)).Return(nil)
	notifier.EXPECT().Notify(mock.Anything, int64(42), domain.TemplateConfirmed, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyStaff(mock.Anything, mock.MatchedBy(func(n domain.StaffNotification) bool {
		return n.Event == domain.StaffEventConfirmed && n.GuestName == "Анна"
	})).Run(func(context.Context, domain.StaffNotification) { close(staffDone) }).Return(nil)

	res, err := svc.Confirm(context.Background(), domain.ConfirmInput{
		UserID:     42,
		TableRef:   "13",
		StartAt:    start,
		PartySize:  5,
		GuestName:  "  Анна ",
		GuestPhone: "+7 (999) 123-45-67",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "19:00", res.TimeOfDay)
	assert.Equal(t, "Анна", res.GuestName)
	assert.Equal(t, testNow, res.CreatedAt)
	assert.Equal(t, domain.StageConfirmed, res.Stage())

	waitFor(t, staffDone)
}

func TestReservationService_Confirm_Validation(t *testing.T) {
	start := time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC)
	valid := domain.ConfirmInput{
		UserID: 42, TableRef: "23", StartAt: start, PartySize: 2,
		GuestName: "Анна", GuestPhone: "89991234567",
	}

	tests := []struct {
		name    string
		mutate  func(in *domain.ConfirmInput)
		wantErr error
	}{
		{name: "empty name", mutate: func(in *domain.ConfirmInput) { in.GuestName = "  " }, wantErr: domain.ErrValidation},
		{name: "short phone", mutate: func(in *domain.ConfirmInput) { in.GuestPhone = "12345" }, wantErr: domain.ErrValidation},
		{name: "letters in phone", mutate: func(in *domain.ConfirmInput) { in.GuestPhone = "+7999abc4567" }, wantErr: domain.ErrValidation},
		{name: "unknown table", mutate: func(in *domain.ConfirmInput) { in.TableRef = "99" }, wantErr: domain.ErrValidation},
		{name: "party over table capacity", mutate: func(in *domain.ConfirmInput) { in.PartySize = 3 }, wantErr: domain.ErrInvalidPartySize},
		{name: "off grid", mutate: func(in *domain.ConfirmInput) { in.StartAt = start.Add(10 * time.Minute) }, wantErr: domain.ErrInvalidSlot},
		{name: "in the past", mutate: func(in *domain.ConfirmInput) { in.StartAt = testNow.Add(-time.Hour) }, wantErr: domain.ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)
			svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

			in := valid
			tt.mutate(&in)
			_, err := svc.Confirm(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReservationService_Confirm_DuplicateSlot(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	holds := mocks.NewMockSlotHolder(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), holds, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateSlot)

	_, err := svc.Confirm(context.Background(), domain.ConfirmInput{
		UserID: 42, TableRef: "13", StartAt: localAt(t, "2026-10-20", "19:00"), PartySize: 4,
		GuestName: "Анна", GuestPhone: "89991234567",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateSlot)
}

func TestReservationService_Confirm_NotificationFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	staffDone := make(chan struct{})
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().Notify(mock.Anything, int64(42), domain.TemplateConfirmed, mock.Anything).
		Return(domain.ErrNotificationDeliveryFailed)
	notifier.EXPECT().NotifyStaff(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.StaffNotification) { close(staffDone) }).
		Return(nil)

	res, err := svc.Confirm(context.Background(), domain.ConfirmInput{
		UserID: 42, TableRef: "13", StartAt: localAt(t, "2026-10-20", "19:00"), PartySize: 4,
		GuestName: "Анна", GuestPhone: "89991234567",
	})

	require.NoError(t, err)
	assert.NotNil(t, res)
	waitFor(t, staffDone)
}

func TestReservationService_Book_SuggestedIsNotBooked(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().ListActive(mock.Anything).Return([]*domain.Reservation{
		{ID: "r1", TableRef: "13", StartAt: localAt(t, "2026-10-20", "18:00")},
	}, nil)

	res, d, err := svc.Book(context.Background(), domain.BookingRequest{
		UserID: 42, Date: "2026-10-20", Time: "19:00", PartySize: 6,
	}, "Анна", "89991234567")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.Nil(t, res)
	assert.Equal(t, domain.OutcomeSuggested, d.Outcome)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t))

	res := &domain.Reservation{ID: "r1", UserID: 42, TableRef: "13", StartAt: localAt(t, "2026-10-20", "19:00")}
	staffDone := make(chan struct{})

	repo.EXPECT().Get(mock.Anything, "r1").Return(res, nil)
	repo.EXPECT().Delete(mock.Anything, "r1").Return(true, nil)
	notifier.EXPECT().Notify(mock.Anything, int64(42), domain.TemplateCancelled, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyStaff(mock.Anything, mock.MatchedBy(func(n domain.StaffNotification) bool {
		return n.Event == domain.StaffEventCancelled && n.ReservationID == "r1"
	})).Run(func(context.Context, domain.StaffNotification) { close(staffDone) }).Return(nil)

	cancelled, err := svc.Cancel(context.Background(), 42, "r1")

	require.NoError(t, err)
	assert.True(t, cancelled)
	waitFor(t, staffDone)
}

func TestReservationService_Cancel_NotOwned(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "r1").Return(&domain.Reservation{ID: "r1", UserID: 7}, nil)

	cancelled, err := svc.Cancel(context.Background(), 42, "r1")

	assert.ErrorIs(t, err, domain.ErrReservationNotOwned)
	assert.False(t, cancelled)
}

func TestReservationService_Cancel_MissingIsNoop(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, domain.ErrReservationNotFound)

	cancelled, err := svc.Cancel(context.Background(), 42, "gone")

	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestReservationService_Cancel_LostRaceIsNoop(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t))

	repo.EXPECT().Get(mock.Anything, "r1").Return(&domain.Reservation{ID: "r1", UserID: 42}, nil)
	repo.EXPECT().Delete(mock.Anything, "r1").Return(false, nil)

	cancelled, err := svc.Cancel(context.Background(), 42, "r1")

	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestReservationService_Cancel_TwiceAgainstStore(t *testing.T) {
	store := memory.NewReservationStore(testHours().Duration)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(store, newTestAllocator(t), nil, notifier, newTestLogger(t))

	require.NoError(t, store.Create(context.Background(), &domain.Reservation{
		ID: "r1", UserID: 42, TableRef: "13", StartAt: localAt(t, "2026-10-20", "19:00"), PartySize: 4,
	}))

	staffDone := make(chan struct{})
	notifier.EXPECT().Notify(mock.Anything, int64(42), domain.TemplateCancelled, mock.Anything).Return(nil).Once()
	notifier.EXPECT().NotifyStaff(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.StaffNotification) { close(staffDone) }).
		Return(nil).Once()

	cancelled, err := svc.Cancel(context.Background(), 42, "r1")
	require.NoError(t, err)
	assert.True(t, cancelled)

	cancelled, err = svc.Cancel(context.Background(), 42, "r1")
	require.NoError(t, err)
	assert.False(t, cancelled)

	waitFor(t, staffDone)
	list, err := store.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReservationService_Confirm_ConcurrentSameSlot(t *testing.T) {
	store := memory.NewReservationStore(testHours().Duration)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(store, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	staffDone := make(chan struct{})
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, domain.TemplateConfirmed, mock.Anything).Return(nil).Once()
	notifier.EXPECT().NotifyStaff(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.StaffNotification) { close(staffDone) }).
		Return(nil).Once()

	in := domain.ConfirmInput{
		TableRef: "13", StartAt: localAt(t, "2026-10-20", "19:00"), PartySize: 6,
		GuestName: "Гость", GuestPhone: "89991234567",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			guest := in
			guest.UserID = int64(100 + i)
			_, errs[i] = svc.Confirm(context.Background(), guest)
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrDuplicateSlot):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)

	waitFor(t, staffDone)
}

func TestReservationService_Available_SkipsPastSlots(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(repo, newTestAllocator(t), nil, notifier, newTestLogger(t), WithClock(func() time.Time { return testNow }))

	repo.EXPECT().ListActive(mock.Anything).Return(nil, nil)

	slots, err := svc.Available(context.Background(), 2, "2026-10-20")

	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, localAt(t, "2026-10-20", "10:30"), slots[0])
	assert.Equal(t, localAt(t, "2026-10-20", "23:00"), slots[len(slots)-1])
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "+79991234567", want: "+79991234567"},
		{in: "8 (999) 123-45-67", want: "89991234567"},
		{in: "123456789", wantErr: true},
		{in: "+1234567890123456", wantErr: true},
		{in: "++79991234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizePhone(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
