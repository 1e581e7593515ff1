package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Complete(t *testing.T) {
	s := Session{Step: StepParentPhone}
	assert.False(t, s.Complete())

	s.ChildName = "Anna"
	s.ChildAgeRange = "6-8"
	s.ParentName = "Olga"
	assert.False(t, s.Complete(), "phone still missing")

	s.ParentPhone = "+100000"
	assert.True(t, s.Complete())
}

func TestSession_ResetClearsEverything(t *testing.T) {
	s := Session{
		Step:          StepParentPhone,
		ChildName:     "Anna",
		ChildAgeRange: "6-8",
		ParentName:    "Olga",
		ParentPhone:   "+100000",
	}
	s.Reset()

	assert.Equal(t, StepIdle, s.Step)
	assert.Equal(t, Session{Step: StepIdle}, s)
}

func TestSession_Submission(t *testing.T) {
	s := Session{
		ChildName:     "Anna",
		ChildAgeRange: "6-8",
		ParentName:    "Olga",
		ParentPhone:   "+100000",
	}
	sub := s.Submission()

	assert.Equal(t, "Anna", sub.ChildName)
	assert.Equal(t, "6-8", sub.ChildAgeRange)
	assert.Equal(t, "Olga", sub.ParentName)
	assert.Equal(t, "+100000", sub.ParentPhone)
	assert.Zero(t, sub.ID, "store assigns the id")
}

func TestBracketByCode(t *testing.T) {
	b, ok := BracketByCode("age_9_11")
	require.True(t, ok)
	assert.Equal(t, "9-11", b.Range)
	assert.Equal(t, "9-11 лет", b.Label)

	_, ok = BracketByCode("age_15_18")
	assert.False(t, ok)

	_, ok = BracketByCode("")
	assert.False(t, ok)
}
