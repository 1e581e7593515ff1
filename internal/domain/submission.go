package domain

import "time"

// Submission is a completed trial-lesson application. Rows are immutable
// once inserted; the store assigns ID and CreatedAt.
type Submission struct {
	ID            int64
	ChildName     string
	ChildAgeRange string
	ParentName    string
	ParentPhone   string
	CreatedAt     time.Time
}
