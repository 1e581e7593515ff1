package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/repository"
)

type intakeService struct {
	subs     repository.SubmissionRepo
	notifier Notifier
	sessions *SessionStore
	logger   *slog.Logger
}

// NewIntakeService wires the conversation state machine to its store,
// notifier and session state. A nil logger discards log output.
func NewIntakeService(subs repository.SubmissionRepo, notifier Notifier, sessions *SessionStore, logger *slog.Logger) IntakeService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &intakeService{subs: subs, notifier: notifier, sessions: sessions, logger: logger}
}

func (s *intakeService) Greet(ctx context.Context, userID int64) []Reply {
	return []Reply{{Text: msgWelcome, Keyboard: KeyboardTrigger}}
}

func (s *intakeService) Trigger(ctx context.Context, userID int64) []Reply {
	s.sessions.With(userID, func(sess *domain.Session) {
		sess.Reset()
		sess.Step = domain.StepChildName
	})
	return []Reply{{Text: msgAskChildName}}
}

func (s *intakeService) Handle(ctx context.Context, userID int64, in domain.Input) ([]Reply, error) {
	var replies []Reply
	var err error
	s.sessions.With(userID, func(sess *domain.Session) {
		replies, err = s.advance(ctx, sess, in)
	})
	return replies, err
}

// advance applies one input to the session's current step. Invalid input
// re-issues the step's prompt and leaves the session untouched.
func (s *intakeService) advance(ctx context.Context, sess *domain.Session, in domain.Input) ([]Reply, error) {
	switch sess.Step {
	case domain.StepChildName:
		return s.collectChildName(sess, in), nil
	case domain.StepAgeRange:
		return s.collectAgeRange(sess, in), nil
	case domain.StepParentName:
		return s.collectParentName(ctx, sess, in)
	case domain.StepParentPhone:
		return s.collectParentPhone(ctx, sess, in)
	default:
		// Idle: not form input. Commands and unrelated chatter are
		// routed elsewhere by the transport.
		return nil, nil
	}
}

func (s *intakeService) collectChildName(sess *domain.Session, in domain.Input) []Reply {
	text, ok := in.(domain.TextInput)
	name := strings.TrimSpace(text.Text)
	if !ok || name == "" {
		return []Reply{{Text: msgAskChildName}}
	}
	sess.ChildName = name
	sess.Step = domain.StepAgeRange
	return []Reply{{Text: msgAskAgeRange, Keyboard: KeyboardBrackets}}
}

func (s *intakeService) collectAgeRange(sess *domain.Session, in domain.Input) []Reply {
	sel, ok := in.(domain.SelectionInput)
	if !ok {
		return []Reply{{Text: msgAskAgeRange, Keyboard: KeyboardBrackets}}
	}
	bracket, ok := domain.BracketByCode(sel.Code)
	if !ok {
		return []Reply{{Text: msgAskAgeRange, Keyboard: KeyboardBrackets}}
	}
	sess.ChildAgeRange = bracket.Range
	sess.Step = domain.StepParentName
	return []Reply{{Text: msgAskParentName, Keyboard: KeyboardContact}}
}

func (s *intakeService) collectParentName(ctx context.Context, sess *domain.Session, in domain.Input) ([]Reply, error) {
	switch v := in.(type) {
	case domain.ContactInput:
		phone := strings.TrimSpace(v.Phone)
		if phone == "" {
			return []Reply{{Text: msgAskParentName, Keyboard: KeyboardContact}}, nil
		}
		name := strings.TrimSpace(v.Name)
		if name == "" {
			name = defaultParentName
		}
		// Both fields fill from the one contact payload; the phone step
		// is skipped entirely.
		sess.ParentName = name
		sess.ParentPhone = phone
		return s.finalize(ctx, sess)
	case domain.TextInput:
		name := strings.TrimSpace(v.Text)
		if name == "" {
			return []Reply{{Text: msgAskParentName, Keyboard: KeyboardContact}}, nil
		}
		sess.ParentName = name
		sess.Step = domain.StepParentPhone
		return []Reply{{Text: msgAskParentPhone}}, nil
	default:
		return []Reply{{Text: msgAskParentName, Keyboard: KeyboardContact}}, nil
	}
}

func (s *intakeService) collectParentPhone(ctx context.Context, sess *domain.Session, in domain.Input) ([]Reply, error) {
	text, ok := in.(domain.TextInput)
	phone := strings.TrimSpace(text.Text)
	if !ok || phone == "" {
		return []Reply{{Text: msgAskParentPhone}}, nil
	}
	sess.ParentPhone = phone
	return s.finalize(ctx, sess)
}

// finalize persists the completed application, attempts the broadcast and
// clears the session. Notifier failure is logged and swallowed; a failed
// insert keeps the collected fields so the next input retries, and the user
// sees an error instead of a false confirmation.
func (s *intakeService) finalize(ctx context.Context, sess *domain.Session) ([]Reply, error) {
	sub := sess.Submission()
	if err := s.subs.Insert(ctx, sub); err != nil {
		return []Reply{{Text: msgSaveFailed}}, fmt.Errorf("persisting application: %w", err)
	}

	if err := s.notifier.Notify(ctx, sub); err != nil {
		s.logger.Error("broadcast notification failed",
			"submission_id", sub.ID,
			"error", err)
	}

	sess.Reset()
	return []Reply{{Text: confirmationText(sub)}}, nil
}
