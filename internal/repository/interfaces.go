package repository

import (
	"context"
	"errors"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SubmissionRepo is the durable store of completed applications.
// Inserts are append-only; there are no update or delete operations.
type SubmissionRepo interface {
	// Insert persists a new submission and fills in ID and CreatedAt.
	Insert(ctx context.Context, s *domain.Submission) error
	// Count returns the total number of stored submissions.
	Count(ctx context.Context) (int, error)
	// GetByID returns a single submission or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	// ListRecent returns up to limit submissions, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error)
	// ListAll returns every submission, newest first.
	ListAll(ctx context.Context) ([]*domain.Submission, error)
}
