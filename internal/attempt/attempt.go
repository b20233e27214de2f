package attempt

import (
	"time"

	"deliberate/internal/problems"
)

// Status is an attempt's position in its lifecycle.
type Status string

const (
	StatusInProgress         Status = "in_progress"
	StatusColdStartCompleted Status = "cold_start_completed"
	StatusSolved             Status = "solved"
	StatusGaveUp             Status = "gave_up"
	StatusTimedOut           Status = "timed_out"
)

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	switch s {
	case StatusSolved, StatusGaveUp, StatusTimedOut:
		return true
	}
	return false
}

// Confidence is the user's self-reported certainty in their pattern choice.
// The zero value means "not yet reported".
type Confidence string

const (
	ConfidenceGuessing      Confidence = "guessing"
	ConfidenceUncertain     Confidence = "uncertain"
	ConfidenceConfident     Confidence = "confident"
	ConfidenceVeryConfident Confidence = "very_confident"
)

// Rank returns the ordinal position (1-4), or 0 when unset/unknown.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceGuessing:
		return 1
	case ConfidenceUncertain:
		return 2
	case ConfidenceConfident:
		return 3
	case ConfidenceVeryConfident:
		return 4
	}
	return 0
}

// High reports whether this is a high-confidence level.
func (c Confidence) High() bool {
	return c == ConfidenceConfident || c == ConfidenceVeryConfident
}

// Low reports whether this is a low-confidence level.
func (c Confidence) Low() bool {
	return c == ConfidenceGuessing || c == ConfidenceUncertain
}

// Levels returns all confidence levels in ordinal order.
func Levels() []Confidence {
	return []Confidence{
		ConfidenceGuessing,
		ConfidenceUncertain,
		ConfidenceConfident,
		ConfidenceVeryConfident,
	}
}

// Outcome is what the user reports at the return gate.
type Outcome string

const (
	OutcomeWorked          Outcome = "worked"
	OutcomePartiallyWorked Outcome = "partially_worked"
	OutcomeFailed          Outcome = "failed"
)

// FirstFailure is the first failure mode the user hit while coding.
type FirstFailure string

const (
	FailureWrongInvariant    FirstFailure = "wrong_invariant"
	FailureEdgeCase          FirstFailure = "edge_case"
	FailureTimeComplexity    FirstFailure = "time_complexity"
	FailureImplementationBug FirstFailure = "implementation_bug"
	FailureSpaceComplexity   FirstFailure = "space_complexity"
	FailureOther             FirstFailure = "other"
)

// ColdStartSubmission is the user's pre-coding hypothesis. Once attached to
// an attempt it is never mutated.
type ColdStartSubmission struct {
	SubmittedAt             time.Time
	ThinkingDurationSeconds int

	// IdentifiedSignals are the statement cues the user noticed before
	// committing to a pattern.
	IdentifiedSignals []string

	ChosenPattern            string
	SecondaryPattern         string
	PrimaryVsSecondaryReason string
	RejectedPattern          string
	RejectionReason          string

	// Confidence optionally reports certainty at commit time.
	Confidence Confidence
}

// Attempt is the aggregate root for one practice run against one problem.
// All state changes go through the operations in machine.go; nothing else
// should write these fields.
type Attempt struct {
	ID      string
	UserID  string
	Problem problems.Ref

	Status    Status
	StartedAt time.Time

	// CompletedAt and TotalTimeSeconds are set only on terminal
	// transitions. TotalTimeSeconds is always derived, never supplied.
	CompletedAt      *time.Time
	TotalTimeSeconds *int

	ChosenPattern  string
	PatternCorrect bool
	Confidence     Confidence

	// Return-gate fields, set only by Complete.
	Outcome          Outcome
	FirstFailure     FirstFailure
	SwitchedApproach *bool
	SwitchReason     string

	ColdStart *ColdStartSubmission
}

// Elapsed returns the time spent so far, or the final total for terminal
// attempts.
func (a *Attempt) Elapsed(now time.Time) time.Duration {
	if a.CompletedAt != nil {
		return a.CompletedAt.Sub(a.StartedAt)
	}
	return now.Sub(a.StartedAt)
}
