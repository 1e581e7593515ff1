package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/service"
)

// Sender is the slice of the Telegram client the dispatcher and notifier
// use. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Dispatcher routes inbound Telegram updates to the intake and admin
// services and renders their replies back onto the chat.
type Dispatcher struct {
	api      Sender
	intake   service.IntakeService
	admin    service.AdminService
	observer service.EventObserver
	logger   *slog.Logger
}

// NewDispatcher wires the transport. A nil observer or logger disables the
// respective output.
func NewDispatcher(api Sender, intake service.IntakeService, admin service.AdminService, observer service.EventObserver, logger *slog.Logger) *Dispatcher {
	if observer == nil {
		observer = service.NoopEventObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{api: api, intake: intake, admin: admin, observer: observer, logger: logger}
}

// Run consumes updates until the channel closes or ctx is done.
func (d *Dispatcher) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			d.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate processes a single update and records telemetry for it.
func (d *Dispatcher) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	started := time.Now()

	route, userID, err := d.route(ctx, upd)

	d.observer.ObserveEvent(ctx, service.EventRecord{
		Route:     route,
		UserID:    userID,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"correlation_id": uuid.NewString(),
			"update_id":      upd.UpdateID,
		},
	})
	if err != nil {
		d.logger.Error("update handling failed", "route", route, "user_id", userID, "error", err)
	}
}

func (d *Dispatcher) route(ctx context.Context, upd tgbotapi.Update) (string, int64, error) {
	switch {
	case upd.CallbackQuery != nil:
		return d.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		return d.handleMessage(ctx, upd.Message)
	default:
		return "ignored", 0, nil
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, m *tgbotapi.Message) (string, int64, error) {
	if m.From == nil || m.Chat == nil {
		return "ignored", 0, nil
	}
	userID := m.From.ID
	chatID := m.Chat.ID

	switch {
	case m.IsCommand():
		switch m.Command() {
		case "start":
			return "cmd_start", userID, d.sendReplies(chatID, d.intake.Greet(ctx, userID))
		case "admin":
			return "cmd_admin", userID, d.sendAdminPanel(ctx, chatID, userID)
		default:
			return "cmd_unknown", userID, nil
		}
	case m.Contact != nil:
		replies, err := d.intake.Handle(ctx, userID, domain.ContactInput{
			Name:  m.Contact.FirstName,
			Phone: m.Contact.PhoneNumber,
		})
		return "contact", userID, errors.Join(err, d.sendReplies(chatID, replies))
	case m.Text == service.TriggerLabel:
		return "trigger", userID, d.sendReplies(chatID, d.intake.Trigger(ctx, userID))
	default:
		replies, err := d.intake.Handle(ctx, userID, domain.TextInput{Text: m.Text})
		return "text", userID, errors.Join(err, d.sendReplies(chatID, replies))
	}
}

// handleCallback processes a button press. The callback is acknowledged
// exactly once regardless of outcome.
func (d *Dispatcher) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) (route string, userID int64, err error) {
	if cb.From != nil {
		userID = cb.From.ID
	}

	ackText := ""
	defer func() {
		if _, ackErr := d.api.Request(tgbotapi.NewCallback(cb.ID, ackText)); ackErr != nil {
			err = errors.Join(err, fmt.Errorf("acking callback: %w", ackErr))
		}
	}()

	var chatID int64
	if cb.Message != nil && cb.Message.Chat != nil {
		chatID = cb.Message.Chat.ID
	}

	switch {
	case strings.HasPrefix(cb.Data, "age_"):
		replies, handleErr := d.intake.Handle(ctx, userID, domain.SelectionInput{Code: cb.Data})
		if chatID == 0 {
			return "bracket", userID, handleErr
		}
		return "bracket", userID, errors.Join(handleErr, d.sendReplies(chatID, replies))

	case cb.Data == callbackAdminViewAll:
		ackText, err = d.sendAllSubmissions(ctx, chatID, userID)
		return "admin_view_all", userID, err

	case cb.Data == callbackAdminDownload:
		ackText, err = d.sendExport(ctx, chatID, userID)
		return "admin_download_db", userID, err

	default:
		return "callback_unknown", userID, nil
	}
}

func (d *Dispatcher) sendAdminPanel(ctx context.Context, chatID, userID int64) error {
	summary, err := d.admin.Summary(ctx, userID)
	if errors.Is(err, service.ErrAccessDenied) {
		return d.sendText(chatID, msgAccessDenied)
	}
	if err != nil {
		return fmt.Errorf("building admin summary: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, AdminPanel(summary))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = adminKeyboard()
	if _, err := d.api.Send(msg); err != nil {
		return fmt.Errorf("sending admin panel: %w", err)
	}
	return nil
}

// sendAllSubmissions delivers the full listing in order, chunked when the
// rendering exceeds Telegram's message limit. Returns the callback ack text.
func (d *Dispatcher) sendAllSubmissions(ctx context.Context, chatID, userID int64) (string, error) {
	subs, err := d.admin.ListAll(ctx, userID)
	if errors.Is(err, service.ErrAccessDenied) {
		return msgCallbackDenied, nil
	}
	if err != nil {
		return "", fmt.Errorf("listing applications: %w", err)
	}

	if len(subs) == 0 {
		return "", d.sendText(chatID, msgNoSubmissionsAll)
	}

	for _, part := range SplitMessage(AllSubmissionsList(subs)) {
		msg := tgbotapi.NewMessage(chatID, part)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := d.api.Send(msg); err != nil {
			return "", fmt.Errorf("sending applications list: %w", err)
		}
	}
	return "", nil
}

// sendExport uploads the database file. Store errors are reported to the
// administrator through the callback ack, not swallowed.
func (d *Dispatcher) sendExport(ctx context.Context, chatID, userID int64) (string, error) {
	path, err := d.admin.ExportPath(ctx, userID)
	if errors.Is(err, service.ErrAccessDenied) {
		return msgCallbackDenied, nil
	}
	if err != nil {
		return fmt.Sprintf("❌ Ошибка: %v", err), nil
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	if _, err := d.api.Send(doc); err != nil {
		return fmt.Sprintf("❌ Ошибка: %v", err), fmt.Errorf("sending export document: %w", err)
	}
	return msgExportSent, nil
}

func (d *Dispatcher) sendReplies(chatID int64, replies []service.Reply) error {
	for _, r := range replies {
		msg := tgbotapi.NewMessage(chatID, r.Text)
		if markup := replyMarkupFor(r.Keyboard); markup != nil {
			msg.ReplyMarkup = markup
		}
		if _, err := d.api.Send(msg); err != nil {
			return fmt.Errorf("sending reply: %w", err)
		}
	}
	return nil
}

func (d *Dispatcher) sendText(chatID int64, text string) error {
	if _, err := d.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
