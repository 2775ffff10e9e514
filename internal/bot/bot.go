package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type handler interface {
	Handle(ctx context.Context, in Input) ([]Reply, error)
}

// Bot reads Telegram updates by long polling and feeds them to the dialogue.
type Bot struct {
	api      telegramAPI
	dialogue handler
	logger   logger.Logger
}

func New(api telegramAPI, dialogue handler, logger logger.Logger) *Bot {
	return &Bot{
		api:      api,
		dialogue: dialogue,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled or the updates channel is closed.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(ctx, update)
		}
	}
}

func (b *Bot) handle(ctx context.Context, update tgbotapi.Update) {
	in, ok := b.input(update)
	if !ok {
		return
	}

	replies, err := b.dialogue.Handle(ctx, in)
	if err != nil {
		b.logger.Error("dialogue failed",
			logger.Int64("chat_id", in.ChatID),
			logger.Int64("user_id", in.UserID),
			logger.String("error", err.Error()),
		)
		replies = []Reply{{Text: msgFailure, Menu: true}}
	}

	for _, r := range replies {
		if _, err := b.api.Send(b.message(in.ChatID, r)); err != nil {
			b.logger.Warn("failed to send reply",
				logger.Int64("chat_id", in.ChatID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (b *Bot) input(update tgbotapi.Update) (Input, bool) {
	if query := update.CallbackQuery; query != nil {
		if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
			b.logger.Debug("callback answer failed", logger.String("error", err.Error()))
		}
		if query.Message == nil || query.From == nil {
			return Input{}, false
		}
		return Input{
			ChatID:   query.Message.Chat.ID,
			UserID:   query.From.ID,
			Callback: query.Data,
		}, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return Input{}, false
	}

	in := Input{
		ChatID: msg.Chat.ID,
		UserID: msg.From.ID,
		Text:   msg.Text,
	}
	if msg.Contact != nil {
		in.Phone = msg.Contact.PhoneNumber
	}
	if msg.IsCommand() {
		in.Text = "/" + msg.Command()
	}
	return in, true
}

func (b *Bot) message(chatID int64, r Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, r.Text)
	if r.Markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}

	switch {
	case len(r.Inline) > 0:
		msg.ReplyMarkup = inlineMarkup(r.Inline)
	case r.AskContact:
		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(btnShareNumber)),
		)
		kb.OneTimeKeyboard = true
		kb.ResizeKeyboard = true
		msg.ReplyMarkup = kb
	case r.Menu:
		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(btnBook),
				tgbotapi.NewKeyboardButton(btnMyBookings),
			),
		)
		kb.ResizeKeyboard = true
		msg.ReplyMarkup = kb
	}

	return msg
}

func inlineMarkup(rows [][]Button) tgbotapi.InlineKeyboardMarkup {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
		}
		keyboard = append(keyboard, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}
