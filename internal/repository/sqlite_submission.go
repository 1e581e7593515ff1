package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
)

const submissionColumns = `id, child_name, child_age_range, parent_name, parent_phone, created_at`

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
// Each insert is a single statement, so the driver serializes writes and a
// concurrent reader observes either the pre- or post-insert state, never a
// partial row.
type SQLiteSubmissionRepo struct {
	db *sql.DB
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(db *sql.DB) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: db}
}

var _ SubmissionRepo = (*SQLiteSubmissionRepo)(nil)

func (r *SQLiteSubmissionRepo) Insert(ctx context.Context, s *domain.Submission) error {
	created := nowUTC()
	query := `INSERT INTO applications (child_name, child_age_range, parent_name, parent_phone, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.ChildName,
		s.ChildAgeRange,
		s.ParentName,
		s.ParentPhone,
		created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted application id: %w", err)
	}
	s.ID = id
	s.CreatedAt = created
	return nil
}

func (r *SQLiteSubmissionRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting applications: %w", err)
	}
	return count, nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM applications WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSubmission(row)
}

func (r *SQLiteSubmissionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM applications ORDER BY id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent applications: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM applications ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

// scanSubmission scans a single submission from a *sql.Row.
func (r *SQLiteSubmissionRepo) scanSubmission(row *sql.Row) (*domain.Submission, error) {
	var s domain.Submission
	var createdAtStr string

	err := row.Scan(&s.ID, &s.ChildName, &s.ChildAgeRange, &s.ParentName, &s.ParentPhone, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("application: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning application: %w", err)
	}

	s.CreatedAt, err = parseStoredTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}

// scanSubmissions scans multiple submissions from *sql.Rows.
func (r *SQLiteSubmissionRepo) scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	var subs []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		var createdAtStr string

		if err := rows.Scan(&s.ID, &s.ChildName, &s.ChildAgeRange, &s.ParentName, &s.ParentPhone, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning application row: %w", err)
		}

		var err error
		s.CreatedAt, err = parseStoredTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}
	return subs, nil
}
