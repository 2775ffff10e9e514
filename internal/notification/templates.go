package notification

import (
	"fmt"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const displayDate = "02.01.2006"

type Venue struct {
	Name      string
	Address   string
	ReviewURL string
}

// Texts renders guest and staff messages in venue local time.
type Texts struct {
	hours domain.OperatingHours
	venue Venue
}

func NewTexts(hours domain.OperatingHours, venue Venue) *Texts {
	return &Texts{hours: hours, venue: venue}
}

func (t *Texts) Render(tmpl domain.Template, p domain.NotificationParams) (string, error) {
	date := t.hours.Local(p.StartAt).Format(displayDate)
	clock := t.hours.LocalTimeOfDay(p.StartAt)

	switch tmpl {
	case domain.TemplateConfirmed:
		return fmt.Sprintf(
			"*Готово!* Стол %s забронирован на %s в %s.\n"+"Гостей: %d\n\n"+"До встречи, %s!",
			esc(p.TableRef), date, clock, p.PartySize, esc(p.GuestName),
		), nil

	case domain.TemplateReminder:
		return fmt.Sprintf(
			"⏰ *Напоминание:* у вас бронь стола через %d часов, %s в %s.\n"+
				"Для отмены введите /start и перейдите в «Мои брони».",
			int(p.Horizon), date, clock,
		), nil

	case domain.TemplatePostVisit:
		text := "✅ Спасибо, что выбрали нас!\n"
		if t.venue.ReviewURL != "" {
			text += "Поделиться впечатлениями можно здесь:\n" + t.venue.ReviewURL + "\n"
		}
		text += fmt.Sprintf("Ждём вас снова в «%s» 🌠", esc(t.venue.Name))
		if t.venue.Address != "" {
			text += "\n\n📍 " + esc(t.venue.Address)
		}
		return text, nil

	case domain.TemplateCancelled:
		return fmt.Sprintf("Бронь на %s в %s отменена ✅", date, clock), nil

	case domain.TemplateSuggestion:
		return fmt.Sprintf(
			"На это время все подходящие столы заняты.\n"+"Ближайшее свободное время: *%s* (стол %s). Забронировать?",
			clock, esc(p.TableRef),
		), nil

	case domain.TemplateRejected:
		return fmt.Sprintf(
			"На %s для %d гостей свободных столов уже нет. Попробуйте выбрать другую дату.",
			date, p.PartySize,
		), nil
	}

	return "", fmt.Errorf("%w: unknown template %q", domain.ErrValidation, tmpl)
}

func (t *Texts) Staff(n domain.StaffNotification) string {
	header := "📢 *Новая бронь!*"
	if n.Event == domain.StaffEventCancelled {
		header = "🚫 *Бронь отменена*"
	}
	return fmt.Sprintf(
		"%s\n"+"📅 Дата: %s\n"+"⏰ Время: %s\n"+"🪑 Стол: %s\n"+"👥 Гостей: %d\n"+"👤 Имя: %s\n"+"📞 Телефон: %s",
		header,
		t.hours.Local(n.StartAt).Format(displayDate),
		t.hours.LocalTimeOfDay(n.StartAt),
		esc(n.TableRef),
		n.PartySize,
		esc(n.GuestName),
		esc(n.GuestPhone),
	)
}

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
