package notification

import (
	"context"
	"fmt"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot         sender
	staffChatID int64
	texts       *Texts
	logger      logger.Logger
}

// NewTelegramNotifier returns a notifier that only logs when bot is nil.
// A zero staffChatID disables staff messages.
func NewTelegramNotifier(bot *tgbotapi.BotAPI, staffChatID int64, texts *Texts, logger logger.Logger) *TelegramNotifier {
	n := &TelegramNotifier{
		staffChatID: staffChatID,
		texts:       texts,
		logger:      logger,
	}
	if bot == nil {
		logger.Warn("telegram bot is not configured, notifications disabled")
		return n
	}
	n.bot = bot
	return n
}

func (n *TelegramNotifier) Notify(ctx context.Context, userID int64, tmpl domain.Template, params domain.NotificationParams) error {
	text, err := n.texts.Render(tmpl, params)
	if err != nil {
		return err
	}
	return n.send(ctx, userID, text)
}

func (n *TelegramNotifier) NotifyStaff(ctx context.Context, s domain.StaffNotification) error {
	if n.staffChatID == 0 {
		n.logger.Debug("staff notification skipped (no staff chat)",
			logger.String("reservation_id", s.ReservationID),
		)
		return nil
	}
	return n.send(ctx, n.staffChatID, n.texts.Staff(s))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationDeliveryFailed, err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: chat %d: %v", domain.ErrNotificationDeliveryFailed, chatID, err)
	}
	return nil
}
