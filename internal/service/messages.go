package service

import (
	"fmt"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
)

// TriggerLabel is the reply-keyboard button text that starts a new
// application. The transport matches incoming messages against it.
const TriggerLabel = "Записаться на пробное занятие"

const (
	msgWelcome        = "Привет! Я помогу записаться на пробное занятие в KiberOne."
	msgAskChildName   = "Введите имя ребенка:"
	msgAskAgeRange    = "Выберите возрастную категорию ребенка:"
	msgAskParentName  = "Введите имя родителя или нажмите кнопку 'Отправить номер телефона', чтобы поделиться контактом:"
	msgAskParentPhone = "Введите номер телефона родителя:"
	msgSaveFailed     = "Не удалось сохранить заявку. Попробуйте ещё раз."

	// Contact shares may carry no first name.
	defaultParentName = "Родитель"
)

func confirmationText(s *domain.Submission) string {
	return fmt.Sprintf(
		"Спасибо! Ваша заявка принята.\n\n"+
			"Ребёнок: %s, Возраст: %s\n"+
			"Родитель: %s, Телефон: %s",
		s.ChildName, s.ChildAgeRange, s.ParentName, s.ParentPhone)
}
