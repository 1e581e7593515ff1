package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/repository"
	"github.com/qwer4es/kiberone-pvkBot/internal/testutil"
)

// setupIntake builds an intake service over a throwaway database and returns
// the pieces tests assert against.
func setupIntake(t *testing.T, notifier Notifier) (IntakeService, repository.SubmissionRepo, *SessionStore) {
	t.Helper()
	repo := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	sessions := NewSessionStore()
	return NewIntakeService(repo, notifier, sessions, nil), repo, sessions
}

// recordingNotifier captures notified submissions and optionally fails.
type recordingNotifier struct {
	err error
	got []*domain.Submission
}

func (n *recordingNotifier) Notify(_ context.Context, s *domain.Submission) error {
	if n.err != nil {
		return n.err
	}
	n.got = append(n.got, s)
	return nil
}

// failingRepo rejects inserts while delegating reads to the wrapped repo.
type failingRepo struct {
	repository.SubmissionRepo
	insertErr error
}

func (r *failingRepo) Insert(ctx context.Context, s *domain.Submission) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	return r.SubmissionRepo.Insert(ctx, s)
}

// countingRepo tracks whether any store operation was reached.
type countingRepo struct {
	repository.SubmissionRepo
	calls int
}

func (r *countingRepo) Count(ctx context.Context) (int, error) {
	r.calls++
	return r.SubmissionRepo.Count(ctx)
}

func (r *countingRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error) {
	r.calls++
	return r.SubmissionRepo.ListRecent(ctx, limit)
}

func (r *countingRepo) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	r.calls++
	return r.SubmissionRepo.ListAll(ctx)
}

var errBoom = errors.New("boom")
