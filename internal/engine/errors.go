package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionFinished is returned by SelectOption once every question
	// has been answered.
	ErrSessionFinished = errors.New("session already finished")

	// ErrSessionNotFinished is returned by result queries on a session that
	// still has unanswered questions.
	ErrSessionNotFinished = errors.New("session not finished")

	// ErrInvalidOption matches any *InvalidOptionError via errors.Is.
	ErrInvalidOption = errors.New("invalid option")
)

// UnknownCandidateError reports a reference to a candidate id that was never
// registered. Question and Option locate the reference inside the
// questionnaire; both are -1 when the lookup came straight from a Registry.
type UnknownCandidateError struct {
	ID       string
	Question int
	Option   int
}

func (e *UnknownCandidateError) Error() string {
	if e.Question < 0 {
		return fmt.Sprintf("unknown candidate %q", e.ID)
	}
	return fmt.Sprintf("question %d option %d: unknown candidate %q", e.Question+1, e.Option+1, e.ID)
}

// InvalidOptionError indicates a selection outside the active question's
// option list.
type InvalidOptionError struct {
	Index int
	Count int
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("option %d out of range [0, %d)", e.Index, e.Count)
}

func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }

// DefinitionError collects structural problems found in candidate or
// question definitions.
type DefinitionError struct {
	Issues []string
}

func (e *DefinitionError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "invalid definition"
	}
	return fmt.Sprintf("invalid definition:\n  %s", strings.Join(e.Issues, "\n  "))
}
