package bot

// Тексты диалога
const (
	cmdStart       = "/start"
	btnBook        = "Забронировать стол"
	btnMyBookings  = "Мои брони"
	btnAbort       = "❌ Отмена"
	btnCancel      = "❌ Отменить"
	btnShareNumber = "📲 Поделиться контактом"

	msgWelcome     = "Добрый день! На связи «Метеорит». Здесь можно забронировать стол или посмотреть действующие брони."
	msgChooseDate  = "Выберите дату брони:"
	msgBadDate     = "На эту дату бронь оформить нельзя. Выберите дату из списка:"
	msgAskParty    = "Сколько будет гостей?"
	msgBadParty    = "Введите количество гостей числом, например 4."
	msgTooMany     = "К сожалению, столов на %d гостей нет. Максимум %d человек, для больших компаний позвоните нам."
	msgChooseTime  = "Выберите время брони на %s:"
	msgSlotGone    = "Это время уже недоступно. Выберите другое:"
	msgAccepted    = "Стол %s свободен %s в %s.\nКак к вам можно обратиться?"
	msgBadName     = "Пожалуйста, напишите имя, на которое оформить бронь."
	msgAskPhone    = "Оставьте номер телефона: нажмите кнопку ниже или введите его вручную."
	msgBadPhone    = "Номер должен содержать от 10 до 15 цифр, например +79991234567. Попробуйте ещё раз:"
	msgSlotTaken   = "Пока вы оформляли бронь, этот стол успели занять. Выберите другое время:"
	msgBooked      = "Бронь оформлена! Посмотреть или отменить её можно в разделе «Мои брони»."
	msgAborted     = "Бронирование отменено."
	msgNoBookings  = "У вас пока нет активных броней."
	msgMyBookings  = "📝 Ваши брони:"
	msgBookingCard = "📅 Дата: %s\n⏰ Время: %s\n🪑 Стол: %s\n👥 Гостей: %d\n👤 Имя: %s"
	msgNotOwned    = "Эту бронь отменить нельзя."
	msgGone        = "Эта бронь уже отменена."
	msgUseButtons  = "Пожалуйста, воспользуйтесь кнопками выше или начните заново: /start"
	msgStale       = "Эта кнопка уже неактуальна. Начните заново: /start"
	msgFailure     = "Что-то пошло не так. Попробуйте ещё раз чуть позже."
	msgAnotherTime = "Другое время"
	msgAcceptAlt   = "✅ Да, на %s"
)

// Префиксы callback data
const (
	cbDate   = "date:"
	cbParty  = "party:"
	cbTime   = "time:"
	cbCancel = "cancel:"
	cbAbort  = "abort"
)
