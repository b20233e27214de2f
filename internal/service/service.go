// Package service wires the attempt state machine to persistence, event
// logging, and the optional LLM reviewer. Commands talk to this layer;
// the domain packages below it stay pure.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"deliberate/internal/attempt"
	"deliberate/internal/patterns"
	"deliberate/internal/problems"
	"deliberate/internal/reflection"
	"deliberate/internal/store"
)

// ErrAttemptNotFound is returned when an attempt ID resolves to nothing.
var ErrAttemptNotFound = errors.New("attempt not found")

// AttemptService coordinates attempt lifecycle operations.
type AttemptService struct {
	attempts store.AttemptRepo
	events   store.EventRepo
	reviewer *reflection.Service
	log      *zap.Logger
	now      func() time.Time
}

// Option configures an AttemptService.
type Option func(*AttemptService)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *AttemptService) { s.log = log }
}

// WithReviewer enables LLM-backed post-attempt reviews.
func WithReviewer(r *reflection.Service) Option {
	return func(s *AttemptService) { s.reviewer = r }
}

// WithClock overrides the time source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(s *AttemptService) { s.now = now }
}

// NewAttemptService creates a service over the given repositories.
func NewAttemptService(attempts store.AttemptRepo, events store.EventRepo, opts ...Option) *AttemptService {
	s := &AttemptService{
		attempts: attempts,
		events:   events,
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new attempt. Fails when the user already has an attempt
// in flight, or when a catalog reference points at an unknown problem.
func (s *AttemptService) Start(ctx context.Context, userID string, ref problems.Ref) (*attempt.Attempt, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if ref.Kind == problems.RefCatalog && !problems.Exists(ref.ID) {
		return nil, fmt.Errorf("unknown catalog problem %q", ref.ID)
	}

	if active, err := s.attempts.Active(ctx, userID); err != nil {
		return nil, err
	} else if active != nil {
		return nil, attempt.ErrActiveAttempt(userID)
	}

	a, events, err := attempt.Start(userID, ref, s.now())
	if err != nil {
		return nil, err
	}
	// The unique index closes the check-then-create race.
	if err := s.attempts.Create(ctx, a); err != nil {
		return nil, err
	}
	s.appendEvents(ctx, events)

	s.log.Info("attempt started",
		zap.String("attempt_id", a.ID),
		zap.String("user_id", userID),
		zap.String("problem", ref.ID),
	)
	return a, nil
}

// Minimum returns the adaptive cold-start minimum for the user, derived
// from their recent finished attempts.
func (s *AttemptService) Minimum(ctx context.Context, userID string) (int, error) {
	recent, err := s.attempts.ListRecentByUser(ctx, userID, attempt.ThresholdSampleSize)
	if err != nil {
		return 0, err
	}
	return attempt.AdaptiveMinimumSeconds(recent), nil
}

// ColdStartResult is what a cold start submission produces beyond the
// updated attempt.
type ColdStartResult struct {
	Attempt        *attempt.Attempt
	MinimumSeconds int
	// Nudge is set when the chosen pattern has been the user's pick for
	// several attempts running.
	Nudge string
}

// SubmitColdStart records the thinking-phase commitment on the user's
// attempt. The submission is validated against the pattern registry and
// the user's adaptive minimum before anything is persisted.
func (s *AttemptService) SubmitColdStart(ctx context.Context, attemptID string, sub attempt.ColdStartSubmission) (*ColdStartResult, error) {
	a, err := s.get(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	for _, p := range []string{sub.ChosenPattern, sub.SecondaryPattern, sub.RejectedPattern} {
		if p != "" && !patterns.Exists(p) {
			return nil, fmt.Errorf("unknown pattern %q", p)
		}
	}

	now := s.now()
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = now
	}

	minimum, err := s.Minimum(ctx, a.UserID)
	if err != nil {
		return nil, err
	}

	history, err := s.attempts.ListByUser(ctx, a.UserID)
	if err != nil {
		return nil, err
	}

	events, err := a.SubmitColdStart(sub, minimum, now)
	if err != nil {
		return nil, err
	}
	if err := s.attempts.Update(ctx, a); err != nil {
		return nil, err
	}
	s.appendEvents(ctx, events)

	res := &ColdStartResult{Attempt: a, MinimumSeconds: minimum}
	if msg, ok := insightsNudge(history, sub.ChosenPattern); ok {
		res.Nudge = msg
	}

	s.log.Info("cold start committed",
		zap.String("attempt_id", a.ID),
		zap.String("pattern", sub.ChosenPattern),
		zap.Int("thinking_seconds", sub.ThinkingDurationSeconds),
		zap.Int("minimum_seconds", minimum),
	)
	return res, nil
}

// Complete finishes an attempt with a full outcome report. When a reviewer
// is configured the LLM review runs after the attempt is stored; a review
// failure never fails the completion.
func (s *AttemptService) Complete(ctx context.Context, attemptID string, res attempt.Result) (*attempt.Attempt, *reflection.Reflection, error) {
	a, err := s.get(ctx, attemptID)
	if err != nil {
		return nil, nil, err
	}

	events, err := a.Complete(res, s.now())
	if err != nil {
		return nil, nil, err
	}
	if err := s.attempts.Update(ctx, a); err != nil {
		return nil, nil, err
	}
	s.appendEvents(ctx, events)

	s.log.Info("attempt completed",
		zap.String("attempt_id", a.ID),
		zap.String("outcome", string(res.Outcome)),
		zap.Bool("pattern_correct", a.PatternCorrect),
	)

	var review *reflection.Reflection
	if s.reviewer != nil {
		review, err = s.reviewer.Analyze(ctx, reflectionInput(a))
		if err != nil {
			s.log.Warn("attempt review failed", zap.String("attempt_id", a.ID), zap.Error(err))
			review = nil
		}
	}
	return a, review, nil
}

// CompleteLegacy finishes an attempt from the old boolean success flag.
// True maps to a worked outcome, false to a failed one.
func (s *AttemptService) CompleteLegacy(ctx context.Context, attemptID string, solved bool) (*attempt.Attempt, *reflection.Reflection, error) {
	res := attempt.Result{Outcome: attempt.OutcomeFailed}
	if solved {
		res.Outcome = attempt.OutcomeWorked
	}
	return s.Complete(ctx, attemptID, res)
}

// GiveUp abandons the attempt.
func (s *AttemptService) GiveUp(ctx context.Context, attemptID string) (*attempt.Attempt, error) {
	return s.terminate(ctx, attemptID, (*attempt.Attempt).GiveUp)
}

// TimeOut expires the attempt.
func (s *AttemptService) TimeOut(ctx context.Context, attemptID string) (*attempt.Attempt, error) {
	return s.terminate(ctx, attemptID, (*attempt.Attempt).TimeOut)
}

func (s *AttemptService) terminate(ctx context.Context, attemptID string, op func(*attempt.Attempt, time.Time) ([]attempt.Event, error)) (*attempt.Attempt, error) {
	a, err := s.get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	events, err := op(a, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.attempts.Update(ctx, a); err != nil {
		return nil, err
	}
	s.appendEvents(ctx, events)

	s.log.Info("attempt ended",
		zap.String("attempt_id", a.ID),
		zap.String("status", string(a.Status)),
	)
	return a, nil
}

// Active returns the user's in-flight attempt, or nil.
func (s *AttemptService) Active(ctx context.Context, userID string) (*attempt.Attempt, error) {
	return s.attempts.Active(ctx, userID)
}

// Get returns the attempt or ErrAttemptNotFound.
func (s *AttemptService) Get(ctx context.Context, attemptID string) (*attempt.Attempt, error) {
	return s.get(ctx, attemptID)
}

// History returns all of the user's attempts, newest first.
func (s *AttemptService) History(ctx context.Context, userID string) ([]*attempt.Attempt, error) {
	return s.attempts.ListByUser(ctx, userID)
}

func (s *AttemptService) get(ctx context.Context, attemptID string) (*attempt.Attempt, error) {
	a, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: %s", ErrAttemptNotFound, attemptID)
	}
	return a, nil
}

func (s *AttemptService) appendEvents(ctx context.Context, events []attempt.Event) {
	for _, e := range events {
		if err := s.events.AppendAttemptEvent(ctx, e); err != nil {
			s.log.Warn("failed to record attempt event",
				zap.String("attempt_id", e.AttemptID),
				zap.String("kind", string(e.Kind)),
				zap.Error(err),
			)
		}
	}
}

// reflectionInput flattens a finished attempt for the reviewer.
func reflectionInput(a *attempt.Attempt) reflection.Input {
	in := reflection.Input{
		ProblemTitle:  a.Problem.Title(),
		ChosenPattern: a.ChosenPattern,
		Confidence:    string(a.Confidence),
		Outcome:       string(a.Outcome),
		FirstFailure:  string(a.FirstFailure),
		SwitchReason:  a.SwitchReason,
	}
	if a.SwitchedApproach != nil {
		in.SwitchedApproach = *a.SwitchedApproach
	}
	if a.TotalTimeSeconds != nil {
		in.TotalSeconds = *a.TotalTimeSeconds
	}
	if cs := a.ColdStart; cs != nil {
		in.IdentifiedSignals = cs.IdentifiedSignals
		in.SecondaryPattern = cs.SecondaryPattern
		in.RejectedPattern = cs.RejectedPattern
		in.RejectionReason = cs.RejectionReason
		in.ThinkingSeconds = cs.ThinkingDurationSeconds
	}
	if a.Problem.Kind == problems.RefCatalog {
		if p, err := problems.Get(a.Problem.ID); err == nil {
			in.ProblemDifficulty = string(p.Difficulty)
			in.KeySignals = p.KeySignals
		}
	}
	if correct, ok := problems.CorrectPattern(a.Problem); ok {
		in.CorrectPattern = correct
	}
	return in
}
