package domain

// Step identifies which field the conversation is currently collecting.
type Step string

const (
	StepIdle        Step = "idle"
	StepChildName   Step = "child_name"
	StepAgeRange    Step = "child_age_range"
	StepParentName  Step = "parent_name"
	StepParentPhone Step = "parent_phone"
)

// Session is the ephemeral per-user conversation state: the current step
// plus the fields collected so far. A zero Session is idle and empty.
type Session struct {
	Step          Step
	ChildName     string
	ChildAgeRange string
	ParentName    string
	ParentPhone   string
}

// Complete reports whether all four form fields have been collected.
func (s *Session) Complete() bool {
	return s.ChildName != "" && s.ChildAgeRange != "" &&
		s.ParentName != "" && s.ParentPhone != ""
}

// Reset clears collected fields and returns the session to idle.
func (s *Session) Reset() {
	*s = Session{Step: StepIdle}
}

// Submission builds the persistable record from the collected fields.
// Callers must check Complete first.
func (s *Session) Submission() *Submission {
	return &Submission{
		ChildName:     s.ChildName,
		ChildAgeRange: s.ChildAgeRange,
		ParentName:    s.ParentName,
		ParentPhone:   s.ParentPhone,
	}
}
