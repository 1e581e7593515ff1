package service

import (
	"context"
	"errors"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
)

// ErrAccessDenied is returned by admin operations for any caller that is not
// the configured administrator.
var ErrAccessDenied = errors.New("access denied")

// Keyboard identifies which selectable affordance accompanies a reply. The
// transport decides how to render each kind.
type Keyboard int

const (
	KeyboardNone     Keyboard = iota
	KeyboardTrigger           // reply keyboard with the signup button
	KeyboardBrackets          // inline keyboard with the age brackets
	KeyboardContact           // reply keyboard with a share-contact button
)

// Reply is a transport-agnostic outbound message produced by the
// conversation state machine.
type Reply struct {
	Text     string
	Keyboard Keyboard
}

// IntakeService drives the multi-step application form. All methods are safe
// for concurrent use; events for one user are serialized on that user's
// session.
type IntakeService interface {
	// Greet answers the start command without touching session state.
	Greet(ctx context.Context, userID int64) []Reply
	// Trigger begins a fresh collection flow for the user.
	Trigger(ctx context.Context, userID int64) []Reply
	// Handle feeds one inbound input into the user's current step. The
	// returned error is non-nil only when persisting a completed
	// application failed; the replies already carry the user-facing text
	// for that case.
	Handle(ctx context.Context, userID int64, in domain.Input) ([]Reply, error)
}

// AdminSummary is the admin panel headline: total count plus the most
// recent submissions, newest first.
type AdminSummary struct {
	Total  int
	Recent []*domain.Submission
}

// AdminService is the restricted reporting surface. Every operation checks
// the caller against the configured administrator id before touching the
// store and returns ErrAccessDenied otherwise.
type AdminService interface {
	Summary(ctx context.Context, callerID int64) (*AdminSummary, error)
	ListAll(ctx context.Context, callerID int64) ([]*domain.Submission, error)
	// ExportPath returns the on-disk database file for download.
	ExportPath(ctx context.Context, callerID int64) (string, error)
}

// Notifier forwards a persisted submission to the broadcast destination.
// A single fire-and-forget attempt: the intake service logs and swallows any
// failure, it is never retried or surfaced to the end user.
type Notifier interface {
	Notify(ctx context.Context, s *domain.Submission) error
}

// NoopNotifier is used when no broadcast destination is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, *domain.Submission) error { return nil }
