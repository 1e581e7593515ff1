// Package bot adapts the Telegram transport to the intake and admin
// services: it routes inbound updates, renders replies and keyboards, and
// broadcasts persisted applications to the configured channel.
package bot

import (
	"fmt"
	"html"
	"strings"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/service"
)

const (
	// maxMessageLen is Telegram's hard per-message limit in characters.
	maxMessageLen = 4096
	// chunkLen is the split size used when a rendering exceeds the limit.
	chunkLen = 4000
)

const (
	msgAccessDenied     = "❌ У вас нет доступа к админ-панели."
	msgCallbackDenied   = "❌ Доступ запрещён."
	msgNoSubmissions    = "📭 Нет заявок."
	msgNoSubmissionsAll = "📭 Нет ни одной заявки."
	msgExportSent       = "✅ База данных отправлена."
)

// AdminPanel renders the /admin headline: total count plus the most recent
// applications, newest first. HTML parse mode; user-supplied fields are
// escaped.
func AdminPanel(s *service.AdminSummary) string {
	var b strings.Builder
	b.WriteString("🔐 <b>Админ-панель</b>\n\n")
	fmt.Fprintf(&b, "📊 Всего заявок: <b>%d</b>\n\n", s.Total)

	if len(s.Recent) == 0 {
		b.WriteString(msgNoSubmissions)
		return b.String()
	}

	b.WriteString("<b>Последние 10 заявок:</b>\n")
	for _, sub := range s.Recent {
		fmt.Fprintf(&b, "🔹 %s (%s лет) — %s, %s\n",
			html.EscapeString(sub.ChildName),
			html.EscapeString(sub.ChildAgeRange),
			html.EscapeString(sub.ParentName),
			html.EscapeString(sub.ParentPhone))
	}
	return b.String()
}

// AllSubmissionsList renders the full numbered listing, newest first.
func AllSubmissionsList(subs []*domain.Submission) string {
	var b strings.Builder
	b.WriteString("📋 <b>Все заявки:</b>\n\n")
	for i, sub := range subs {
		fmt.Fprintf(&b, "%d. %s (%s лет) — %s, %s\n",
			i+1,
			html.EscapeString(sub.ChildName),
			html.EscapeString(sub.ChildAgeRange),
			html.EscapeString(sub.ParentName),
			html.EscapeString(sub.ParentPhone))
	}
	return b.String()
}

// BroadcastText renders the channel notification for one application.
func BroadcastText(s *domain.Submission) string {
	return fmt.Sprintf(
		"🔔 Новая заявка на пробное занятие\n"+
			"👤 Ребёнок: %s\n"+
			"📅 Возраст: %s лет\n"+
			"👨‍👩‍👧 Родитель: %s\n"+
			"📞 Телефон: %s",
		s.ChildName, s.ChildAgeRange, s.ParentName, s.ParentPhone)
}

// SplitMessage returns the text unchanged when it fits in one Telegram
// message; otherwise it splits it into ordered chunks of at most chunkLen
// characters whose concatenation reproduces the input.
func SplitMessage(s string) []string {
	runes := []rune(s)
	if len(runes) <= maxMessageLen {
		return []string{s}
	}

	var parts []string
	for start := 0; start < len(runes); start += chunkLen {
		end := start + chunkLen
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
