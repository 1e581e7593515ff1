package service

import (
	"context"
	"fmt"
	"os"

	"github.com/qwer4es/kiberone-pvkBot/internal/domain"
	"github.com/qwer4es/kiberone-pvkBot/internal/repository"
)

// recentLimit is how many submissions the admin summary shows.
const recentLimit = 10

type adminService struct {
	subs    repository.SubmissionRepo
	adminID int64
	dbPath  string
}

// NewAdminService builds the restricted reporting surface. adminID 0 means
// no administrator is configured and every operation is denied.
func NewAdminService(subs repository.SubmissionRepo, adminID int64, dbPath string) AdminService {
	return &adminService{subs: subs, adminID: adminID, dbPath: dbPath}
}

func (s *adminService) authorize(callerID int64) error {
	if s.adminID == 0 || callerID != s.adminID {
		return ErrAccessDenied
	}
	return nil
}

func (s *adminService) Summary(ctx context.Context, callerID int64) (*AdminSummary, error) {
	if err := s.authorize(callerID); err != nil {
		return nil, err
	}

	total, err := s.subs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting applications: %w", err)
	}
	recent, err := s.subs.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent applications: %w", err)
	}
	return &AdminSummary{Total: total, Recent: recent}, nil
}

func (s *adminService) ListAll(ctx context.Context, callerID int64) ([]*domain.Submission, error) {
	if err := s.authorize(callerID); err != nil {
		return nil, err
	}
	return s.subs.ListAll(ctx)
}

func (s *adminService) ExportPath(ctx context.Context, callerID int64) (string, error) {
	if err := s.authorize(callerID); err != nil {
		return "", err
	}
	if _, err := os.Stat(s.dbPath); err != nil {
		return "", fmt.Errorf("export: database file: %w", err)
	}
	return s.dbPath, nil
}
