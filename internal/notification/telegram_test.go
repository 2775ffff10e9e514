package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testTexts() *Texts {
	return NewTexts(domain.OperatingHours{
		Location: time.FixedZone("MSK", 3*60*60),
		Open:     9 * time.Hour,
		Close:    23 * time.Hour,
		Step:     30 * time.Minute,
		Duration: 2 * time.Hour,
	}, Venue{Name: "Метеорит", Address: "ул. Покровка, 20/1с1", ReviewURL: "https://example.org/review"})
}

func testParams() domain.NotificationParams {
	return domain.NotificationParams{
		ReservationID: "r1",
		TableRef:      "13",
		PartySize:     5,
		StartAt:       time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC),
		GuestName:     "anna_k",
		GuestPhone:    "+79991234567",
	}
}

func TestNotify_RendersLocalTime(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, staffChatID: -100, texts: testTexts(), logger: newTestLogger(t)}

	err := n.Notify(context.Background(), 42, domain.TemplateConfirmed, testParams())

	require.NoError(t, err)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, "20.10.2026 в 19:00")
	assert.Contains(t, bot.sent[0].Text, `anna\_k`)
}

func TestNotify_Reminder(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, texts: testTexts(), logger: newTestLogger(t)}

	p := testParams()
	p.Horizon = domain.Reminder12h
	require.NoError(t, n.Notify(context.Background(), 42, domain.TemplateReminder, p))

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "через 12 часов")
	assert.Contains(t, bot.sent[0].Text, "Мои брони")
}

func TestNotify_PostVisitMentionsVenue(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, texts: testTexts(), logger: newTestLogger(t)}

	require.NoError(t, n.Notify(context.Background(), 42, domain.TemplatePostVisit, testParams()))

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "https://example.org/review")
	assert.Contains(t, bot.sent[0].Text, "Покровка")
}

func TestNotify_SendErrorWrapsSentinel(t *testing.T) {
	bot := &fakeSender{err: errors.New("Forbidden: bot was blocked by the user")}
	n := &TelegramNotifier{bot: bot, texts: testTexts(), logger: newTestLogger(t)}

	err := n.Notify(context.Background(), 42, domain.TemplateCancelled, testParams())

	assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailed)
}

func TestNotify_UnknownTemplate(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, texts: testTexts(), logger: newTestLogger(t)}

	err := n.Notify(context.Background(), 42, domain.Template("nope"), testParams())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, bot.sent)
}

func TestNotifyStaff(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, staffChatID: -100, texts: testTexts(), logger: newTestLogger(t)}

	err := n.NotifyStaff(context.Background(), domain.StaffNotification{
		Event:              domain.StaffEventCancelled,
		NotificationParams: testParams(),
	})

	require.NoError(t, err)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(-100), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "Бронь отменена")
	assert.Contains(t, bot.sent[0].Text, "+79991234567")
}

func TestNotifier_DisabledIsNoop(t *testing.T) {
	n := NewTelegramNotifier(nil, 0, testTexts(), newTestLogger(t))

	assert.NoError(t, n.Notify(context.Background(), 42, domain.TemplateConfirmed, testParams()))
	assert.NoError(t, n.NotifyStaff(context.Background(), domain.StaffNotification{
		Event:              domain.StaffEventConfirmed,
		NotificationParams: testParams(),
	}))
}

func TestTexts_AllTemplatesRender(t *testing.T) {
	texts := testTexts()
	for _, tmpl := range []domain.Template{
		domain.TemplateConfirmed,
		domain.TemplateReminder,
		domain.TemplatePostVisit,
		domain.TemplateCancelled,
		domain.TemplateSuggestion,
		domain.TemplateRejected,
	} {
		text, err := texts.Render(tmpl, testParams())
		require.NoError(t, err, tmpl)
		assert.NotEmpty(t, text, tmpl)
	}
}
