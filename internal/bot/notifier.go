package bot

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/service"
)

// ChannelNotifier forwards persisted applications to a Telegram broadcast
// channel. One attempt per submission; the caller owns the swallow-and-log
// failure policy.
type ChannelNotifier struct {
	api     Sender
	channel string
}

// NewChannelNotifier builds a notifier for the given channel identifier,
// either a numeric chat id or an @username.
func NewChannelNotifier(api Sender, channel string) *ChannelNotifier {
	return &ChannelNotifier{api: api, channel: channel}
}

var _ service.Notifier = (*ChannelNotifier)(nil)

func (n *ChannelNotifier) Notify(_ context.Context, s *domain.Submission) error {
	text := BroadcastText(s)

	var msg tgbotapi.Chattable
	if chatID, err := strconv.ParseInt(n.channel, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(n.channel, text)
	}

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("sending broadcast to %s: %w", n.channel, err)
	}
	return nil
}
