package testutil

import "github.com/qwer4es/kiberone-pvkBot/internal/domain"

// NewTestSubmission builds an unpersisted submission with the four content
// fields filled. ID and CreatedAt are left for the store to assign.
func NewTestSubmission(child, ageRange, parent, phone string) *domain.Submission {
	return &domain.Submission{
		ChildName:     child,
		ChildAgeRange: ageRange,
		ParentName:    parent,
		ParentPhone:   phone,
	}
}
