package bot

import (
	"context"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qwer4es/kiberone-pvkBot/internal/repository"
	"github.com/qwer4es/kiberone-pvkBot/internal/service"
	"github.com/qwer4es/kiberone-pvkBot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  int64 = 42
	testAdminID int64 = 777
)

// fakeSender records outbound traffic instead of hitting the Telegram API.
type fakeSender struct {
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
	sendErr   error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) sentMessages() []tgbotapi.MessageConfig {
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

func (f *fakeSender) acks() []tgbotapi.CallbackConfig {
	var out []tgbotapi.CallbackConfig
	for _, c := range f.requested {
		if cb, ok := c.(tgbotapi.CallbackConfig); ok {
			out = append(out, cb)
		}
	}
	return out
}

// setupDispatcher wires a dispatcher over real services and a throwaway
// database, with a recording sender.
func setupDispatcher(t *testing.T) (*Dispatcher, *fakeSender, repository.SubmissionRepo) {
	t.Helper()
	api := &fakeSender{}
	repo := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	sessions := service.NewSessionStore()
	intake := service.NewIntakeService(repo, nil, sessions, nil)
	admin := service.NewAdminService(repo, testAdminID, "applications.db")
	return NewDispatcher(api, intake, admin, nil, nil), api, repo
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}}
}

func commandUpdate(userID int64, command string) tgbotapi.Update {
	upd := textUpdate(userID, command)
	upd.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command)},
	}
	return upd
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: userID},
		Data: data,
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: userID},
		},
	}}
}

func contactUpdate(userID int64, name, phone string) tgbotapi.Update {
	upd := textUpdate(userID, "")
	upd.Message.Contact = &tgbotapi.Contact{FirstName: name, PhoneNumber: phone}
	return upd
}

func TestDispatcher_StartCommandSendsGreeting(t *testing.T) {
	d, api, _ := setupDispatcher(t)

	d.HandleUpdate(context.Background(), commandUpdate(testUserID, "/start"))

	msgs := api.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "KiberOne")
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, msgs[0].ReplyMarkup)
}

func TestDispatcher_FullFlowOverTransport(t *testing.T) {
	d, api, repo := setupDispatcher(t)
	ctx := context.Background()

	d.HandleUpdate(ctx, textUpdate(testUserID, service.TriggerLabel))
	d.HandleUpdate(ctx, textUpdate(testUserID, "Anna"))
	d.HandleUpdate(ctx, callbackUpdate(testUserID, "age_6_8"))
	d.HandleUpdate(ctx, textUpdate(testUserID, "Olga"))
	d.HandleUpdate(ctx, textUpdate(testUserID, "+100000"))

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Anna", subs[0].ChildName)
	assert.Equal(t, "6-8", subs[0].ChildAgeRange)
	assert.Equal(t, "Olga", subs[0].ParentName)
	assert.Equal(t, "+100000", subs[0].ParentPhone)

	msgs := api.sentMessages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[len(msgs)-1].Text, "Ваша заявка принята")

	require.Len(t, api.acks(), 1, "the bracket callback is acked exactly once")
}

func TestDispatcher_ContactShareCompletesFlow(t *testing.T) {
	d, _, repo := setupDispatcher(t)
	ctx := context.Background()

	d.HandleUpdate(ctx, textUpdate(testUserID, service.TriggerLabel))
	d.HandleUpdate(ctx, textUpdate(testUserID, "Anna"))
	d.HandleUpdate(ctx, callbackUpdate(testUserID, "age_9_11"))
	d.HandleUpdate(ctx, contactUpdate(testUserID, "Olga", "+100000"))

	subs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Olga", subs[0].ParentName)
	assert.Equal(t, "+100000", subs[0].ParentPhone)
}

func TestDispatcher_UnknownCallbackStillAcked(t *testing.T) {
	d, api, _ := setupDispatcher(t)

	d.HandleUpdate(context.Background(), callbackUpdate(testUserID, "something_else"))

	require.Len(t, api.acks(), 1)
	assert.Empty(t, api.sentMessages())
}

func TestDispatcher_AdminPanelForAdmin(t *testing.T) {
	d, api, repo := setupDispatcher(t)
	ctx := context.Background()

	sub := testutil.NewTestSubmission("Anna", "6-8", "Olga", "+100000")
	require.NoError(t, repo.Insert(ctx, sub))

	d.HandleUpdate(ctx, commandUpdate(testAdminID, "/admin"))

	msgs := api.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Админ-панель")
	assert.Contains(t, msgs[0].Text, "Anna")
	assert.Equal(t, tgbotapi.ModeHTML, msgs[0].ParseMode)
	assert.IsType(t, tgbotapi.InlineKeyboardMarkup{}, msgs[0].ReplyMarkup)
}

func TestDispatcher_AdminPanelDeniedForOthers(t *testing.T) {
	d, api, _ := setupDispatcher(t)

	d.HandleUpdate(context.Background(), commandUpdate(testUserID, "/admin"))

	msgs := api.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "нет доступа")
}

func TestDispatcher_ViewAllDeniedViaAck(t *testing.T) {
	d, api, _ := setupDispatcher(t)

	d.HandleUpdate(context.Background(), callbackUpdate(testUserID, callbackAdminViewAll))

	assert.Empty(t, api.sentMessages(), "denied callers get no data")
	acks := api.acks()
	require.Len(t, acks, 1)
	assert.Contains(t, acks[0].Text, "Доступ запрещён")
}

func TestDispatcher_ViewAllSendsListing(t *testing.T) {
	d, api, repo := setupDispatcher(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		sub := testutil.NewTestSubmission(fmt.Sprintf("Child %d", i), "6-8", "Parent", "+100000")
		require.NoError(t, repo.Insert(ctx, sub))
	}

	d.HandleUpdate(ctx, callbackUpdate(testAdminID, callbackAdminViewAll))

	msgs := api.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Все заявки")
	assert.Contains(t, msgs[0].Text, "1. Child 3")
	assert.Contains(t, msgs[0].Text, "3. Child 1")
	require.Len(t, api.acks(), 1)
}

func TestDispatcher_ViewAllEmptyStore(t *testing.T) {
	d, api, _ := setupDispatcher(t)

	d.HandleUpdate(context.Background(), callbackUpdate(testAdminID, callbackAdminViewAll))

	msgs := api.sentMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Нет ни одной заявки")
}

func TestDispatcher_ExportMissingFileReportsError(t *testing.T) {
	// The admin service points at a file that does not exist, so export must
	// surface the failure through the ack instead of a document.
	api := &fakeSender{}
	repo := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	intake := service.NewIntakeService(repo, nil, service.NewSessionStore(), nil)
	admin := service.NewAdminService(repo, testAdminID, "/nonexistent/applications.db")
	d := NewDispatcher(api, intake, admin, nil, nil)

	d.HandleUpdate(context.Background(), callbackUpdate(testAdminID, callbackAdminDownload))

	assert.Empty(t, api.sent)
	acks := api.acks()
	require.Len(t, acks, 1)
	assert.Contains(t, acks[0].Text, "Ошибка")
}

func TestDispatcher_IgnoresChatterOutsideFlow(t *testing.T) {
	d, api, repo := setupDispatcher(t)
	ctx := context.Background()

	d.HandleUpdate(ctx, textUpdate(testUserID, "hello there"))

	assert.Empty(t, api.sentMessages())
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
