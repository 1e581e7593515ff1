package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/service"
)

// Callback codes carried by the admin inline keyboard.
const (
	callbackAdminViewAll  = "admin_view_all"
	callbackAdminDownload = "admin_download_db"
)

const contactButtonLabel = "Отправить номер телефона"

// replyMarkupFor maps a service keyboard kind to its Telegram markup.
// Returns nil for KeyboardNone.
func replyMarkupFor(k service.Keyboard) interface{} {
	switch k {
	case service.KeyboardTrigger:
		return triggerKeyboard()
	case service.KeyboardBrackets:
		return bracketKeyboard()
	case service.KeyboardContact:
		return contactKeyboard()
	default:
		return nil
	}
}

func triggerKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(service.TriggerLabel)),
	)
	kb.ResizeKeyboard = true
	return kb
}

// bracketKeyboard lists the fixed age brackets, one button per row, with the
// bracket code as callback data.
func bracketKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(domain.AgeBrackets))
	for _, b := range domain.AgeBrackets {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Code),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func contactKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(contactButtonLabel)),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Посмотреть все заявки", callbackAdminViewAll),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Скачать базу данных", callbackAdminDownload),
		),
	)
}
