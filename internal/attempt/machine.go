package attempt

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"deliberate/internal/problems"
)

// Lifecycle:
//
//	InProgress → ColdStartCompleted → Solved
//	InProgress | ColdStartCompleted → GaveUp
//	InProgress | ColdStartCompleted → TimedOut
//
// Solved, GaveUp and TimedOut are terminal. Every operation validates
// first and mutates only on success, so a failed call leaves the attempt
// exactly as it was. Operations take an explicit now so they stay pure.

// Start creates a new attempt in InProgress.
func Start(userID string, problem problems.Ref, now time.Time) (*Attempt, []Event, error) {
	if userID == "" {
		return nil, nil, fmt.Errorf("user ID is required")
	}
	if err := problem.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid problem ref: %w", err)
	}

	a := &Attempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		Problem:   problem,
		Status:    StatusInProgress,
		StartedAt: now.UTC(),
	}
	return a, []Event{event(EventStarted, a, a.StartedAt)}, nil
}

// SubmitColdStart attaches the pre-coding hypothesis and advances to
// ColdStartCompleted. minimumSeconds is the adaptive floor computed for
// this user (see threshold.go); timing validation is delegated to the
// cold-start gate.
func (a *Attempt) SubmitColdStart(sub ColdStartSubmission, minimumSeconds int, now time.Time) ([]Event, error) {
	if a.Status != StatusInProgress {
		return nil, newError(KindInvalidStatusTransition,
			"cold start can only be submitted on an in-progress attempt (status is %s)", a.Status)
	}
	if err := ValidateColdStart(sub, minimumSeconds); err != nil {
		return nil, err
	}

	sub.SubmittedAt = now.UTC()
	a.ColdStart = &sub
	a.ChosenPattern = sub.ChosenPattern
	if sub.Confidence != "" {
		a.Confidence = sub.Confidence
	}
	a.Status = StatusColdStartCompleted

	return []Event{event(EventColdStartCompleted, a, sub.SubmittedAt)}, nil
}

// Result is what the user reports at the return gate.
type Result struct {
	Outcome          Outcome
	FirstFailure     FirstFailure
	SwitchedApproach bool
	SwitchReason     string

	// Confidence optionally revises the cold-start confidence.
	Confidence Confidence
}

// Complete closes the attempt through the return gate. Allowed only from
// ColdStartCompleted: completing without a committed hypothesis would leave
// nothing to calibrate against.
func (a *Attempt) Complete(res Result, now time.Time) ([]Event, error) {
	if a.Status != StatusColdStartCompleted {
		return nil, newError(KindColdStartRequired,
			"attempt must complete its cold start before the return gate (status is %s)", a.Status)
	}
	switch res.Outcome {
	case OutcomeWorked, OutcomePartiallyWorked, OutcomeFailed:
	default:
		return nil, fmt.Errorf("invalid outcome: %q", res.Outcome)
	}

	a.Outcome = res.Outcome
	a.PatternCorrect = res.Outcome == OutcomeWorked
	a.FirstFailure = res.FirstFailure
	switched := res.SwitchedApproach
	a.SwitchedApproach = &switched
	a.SwitchReason = res.SwitchReason
	if res.Confidence != "" {
		a.Confidence = res.Confidence
	}

	return a.finish(StatusSolved, now), nil
}

// GiveUp abandons the attempt from any non-terminal state.
func (a *Attempt) GiveUp(now time.Time) ([]Event, error) {
	if a.Status.Terminal() {
		return nil, newError(KindAlreadyCompleted,
			"attempt is already %s", a.Status)
	}
	a.PatternCorrect = false
	return a.finish(StatusGaveUp, now), nil
}

// TimeOut closes the attempt after the caller detected elapsed-time
// exhaustion. The machine has no internal timer.
func (a *Attempt) TimeOut(now time.Time) ([]Event, error) {
	if a.Status.Terminal() {
		return nil, newError(KindAlreadyCompleted,
			"attempt is already %s", a.Status)
	}
	a.PatternCorrect = false
	return a.finish(StatusTimedOut, now), nil
}

// finish applies the shared terminal bookkeeping: completion timestamp,
// derived total time in whole seconds, and the completion event.
func (a *Attempt) finish(status Status, now time.Time) []Event {
	completed := now.UTC()
	total := int(completed.Sub(a.StartedAt).Seconds())
	a.CompletedAt = &completed
	a.TotalTimeSeconds = &total
	a.Status = status
	return []Event{event(EventCompleted, a, completed)}
}
