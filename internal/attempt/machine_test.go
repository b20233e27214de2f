package attempt

import (
	"testing"
	"time"

	"deliberate/internal/problems"
)

var t0 = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func startedAttempt(t *testing.T) *Attempt {
	t.Helper()
	a, events, err := Start("user-1", problems.CatalogRef("two-sum"), t0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(events) != 1 || events[0].Kind != EventStarted {
		t.Fatalf("events = %+v, want one attempt_started", events)
	}
	return a
}

func validSubmission() ColdStartSubmission {
	return ColdStartSubmission{
		ThinkingDurationSeconds: 45,
		IdentifiedSignals:       []string{"exact target pair", "single pass possible"},
		ChosenPattern:           "hash-map-lookup",
		SecondaryPattern:        "two-pointers",
		RejectedPattern:         "binary-search",
		RejectionReason:         "input is not sorted",
		Confidence:              ConfidenceConfident,
	}
}

func committedAttempt(t *testing.T) *Attempt {
	t.Helper()
	a := startedAttempt(t)
	if _, err := a.SubmitColdStart(validSubmission(), 30, t0.Add(45*time.Second)); err != nil {
		t.Fatalf("SubmitColdStart: %v", err)
	}
	return a
}

func TestStart(t *testing.T) {
	a := startedAttempt(t)
	if a.Status != StatusInProgress {
		t.Errorf("Status = %s, want in_progress", a.Status)
	}
	if a.ID == "" {
		t.Error("expected a generated ID")
	}
	if a.CompletedAt != nil || a.TotalTimeSeconds != nil {
		t.Error("completion fields must be unset on a fresh attempt")
	}
	if a.PatternCorrect {
		t.Error("PatternCorrect must default to false")
	}
	if a.Confidence != "" {
		t.Error("Confidence must default to unset")
	}
}

func TestStartValidation(t *testing.T) {
	if _, _, err := Start("", problems.CatalogRef("two-sum"), t0); err == nil {
		t.Error("expected error for empty user ID")
	}
	if _, _, err := Start("user-1", problems.Ref{}, t0); err == nil {
		t.Error("expected error for invalid problem ref")
	}
}

func TestSubmitColdStart(t *testing.T) {
	a := startedAttempt(t)
	submittedAt := t0.Add(45 * time.Second)

	events, err := a.SubmitColdStart(validSubmission(), 30, submittedAt)
	if err != nil {
		t.Fatalf("SubmitColdStart: %v", err)
	}

	if a.Status != StatusColdStartCompleted {
		t.Errorf("Status = %s, want cold_start_completed", a.Status)
	}
	if a.ColdStart == nil {
		t.Fatal("submission was not attached")
	}
	if !a.ColdStart.SubmittedAt.Equal(submittedAt) {
		t.Errorf("SubmittedAt = %v, want %v", a.ColdStart.SubmittedAt, submittedAt)
	}
	if a.ChosenPattern != "hash-map-lookup" {
		t.Errorf("ChosenPattern = %q", a.ChosenPattern)
	}
	if a.Confidence != ConfidenceConfident {
		t.Errorf("Confidence = %q, want confident", a.Confidence)
	}
	if len(events) != 1 || events[0].Kind != EventColdStartCompleted {
		t.Errorf("events = %+v", events)
	}
}

func TestSubmitColdStartOnlyFromInProgress(t *testing.T) {
	a := committedAttempt(t)

	_, err := a.SubmitColdStart(validSubmission(), 30, t0.Add(time.Minute))
	if !IsKind(err, KindInvalidStatusTransition) {
		t.Fatalf("err = %v, want invalid_status_transition", err)
	}
}

func TestCompleteRequiresColdStart(t *testing.T) {
	a := startedAttempt(t)
	before := *a

	_, err := a.Complete(Result{Outcome: OutcomeWorked}, t0.Add(time.Minute))
	if !IsKind(err, KindColdStartRequired) {
		t.Fatalf("err = %v, want cold_start_required", err)
	}

	// Failed transition must not leave partial mutations.
	if *a != before {
		t.Errorf("attempt mutated on failed transition:\n got %+v\nwant %+v", *a, before)
	}
}

func TestCompleteWorked(t *testing.T) {
	a := committedAttempt(t)
	done := t0.Add(25 * time.Minute)

	events, err := a.Complete(Result{
		Outcome:      OutcomeWorked,
		Confidence:   ConfidenceVeryConfident,
		SwitchReason: "",
	}, done)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if a.Status != StatusSolved {
		t.Errorf("Status = %s, want solved", a.Status)
	}
	if !a.PatternCorrect {
		t.Error("PatternCorrect must be true for a worked outcome")
	}
	if a.CompletedAt == nil || !a.CompletedAt.Equal(done) {
		t.Errorf("CompletedAt = %v, want %v", a.CompletedAt, done)
	}
	if a.TotalTimeSeconds == nil || *a.TotalTimeSeconds != 25*60 {
		t.Errorf("TotalTimeSeconds = %v, want %d", a.TotalTimeSeconds, 25*60)
	}
	if a.Confidence != ConfidenceVeryConfident {
		t.Errorf("Confidence = %q, want very_confident", a.Confidence)
	}
	if a.SwitchedApproach == nil || *a.SwitchedApproach {
		t.Errorf("SwitchedApproach = %v, want recorded false", a.SwitchedApproach)
	}
	if len(events) != 1 || events[0].Kind != EventCompleted {
		t.Errorf("events = %+v", events)
	}
}

func TestCompleteFailedOutcome(t *testing.T) {
	a := committedAttempt(t)

	_, err := a.Complete(Result{
		Outcome:          OutcomeFailed,
		FirstFailure:     FailureEdgeCase,
		SwitchedApproach: true,
		SwitchReason:     "hash map collisions confused me, fell back to sorting",
	}, t0.Add(40*time.Minute))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if a.Status != StatusSolved {
		t.Errorf("Status = %s, want solved (return gate always closes via Solved)", a.Status)
	}
	if a.PatternCorrect {
		t.Error("PatternCorrect must be false for a failed outcome")
	}
	if a.FirstFailure != FailureEdgeCase {
		t.Errorf("FirstFailure = %q", a.FirstFailure)
	}
	if a.SwitchedApproach == nil || !*a.SwitchedApproach {
		t.Error("SwitchedApproach must be recorded true")
	}
}

func TestCompleteRejectsInvalidOutcome(t *testing.T) {
	a := committedAttempt(t)
	if _, err := a.Complete(Result{Outcome: "shrug"}, t0.Add(time.Minute)); err == nil {
		t.Error("expected error for invalid outcome")
	}
	if a.Status != StatusColdStartCompleted {
		t.Errorf("Status mutated to %s on failed complete", a.Status)
	}
}

func TestGiveUpFromInProgress(t *testing.T) {
	a := startedAttempt(t)
	done := t0.Add(10 * time.Minute)

	events, err := a.GiveUp(done)
	if err != nil {
		t.Fatalf("GiveUp: %v", err)
	}
	if a.Status != StatusGaveUp {
		t.Errorf("Status = %s, want gave_up", a.Status)
	}
	if a.PatternCorrect {
		t.Error("PatternCorrect must be false after give-up")
	}
	if a.TotalTimeSeconds == nil || *a.TotalTimeSeconds != 600 {
		t.Errorf("TotalTimeSeconds = %v, want 600", a.TotalTimeSeconds)
	}
	if a.Outcome != "" || a.FirstFailure != "" {
		t.Error("give-up must not set return-gate fields")
	}
	if len(events) != 1 || events[0].Kind != EventCompleted {
		t.Errorf("events = %+v", events)
	}
}

func TestTimeOutFromColdStartCompleted(t *testing.T) {
	a := committedAttempt(t)
	if _, err := a.TimeOut(t0.Add(time.Hour)); err != nil {
		t.Fatalf("TimeOut: %v", err)
	}
	if a.Status != StatusTimedOut {
		t.Errorf("Status = %s, want timed_out", a.Status)
	}
}

func TestTerminalStatesRejectFurtherTransitions(t *testing.T) {
	a := committedAttempt(t)
	if _, err := a.Complete(Result{Outcome: OutcomeWorked}, t0.Add(time.Minute)); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if _, err := a.GiveUp(t0.Add(2 * time.Minute)); !IsKind(err, KindAlreadyCompleted) {
		t.Errorf("GiveUp after solved: err = %v, want already_completed", err)
	}
	if _, err := a.TimeOut(t0.Add(2 * time.Minute)); !IsKind(err, KindAlreadyCompleted) {
		t.Errorf("TimeOut after solved: err = %v, want already_completed", err)
	}
	if _, err := a.SubmitColdStart(validSubmission(), 30, t0.Add(2*time.Minute)); !IsKind(err, KindInvalidStatusTransition) {
		t.Errorf("SubmitColdStart after solved: err = %v, want invalid_status_transition", err)
	}
}

func TestTotalTimeUnsetUntilTerminal(t *testing.T) {
	a := committedAttempt(t)
	if a.TotalTimeSeconds != nil || a.CompletedAt != nil {
		t.Error("completion fields must stay unset before a terminal transition")
	}
}
