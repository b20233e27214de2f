// Package insights derives behavioral signals from a user's completed
// attempt history: pattern decay, over-reliance, avoidance, and
// confidence-calibration weaknesses. Every function here is a pure,
// deterministic pass over the history snapshot it is handed — no mutation,
// no persistence, and empty history yields empty results.
//
// History slices are expected newest first (the order the store's list
// methods return).
package insights

import (
	"time"

	"deliberate/internal/attempt"
)

// DecayingPattern reports a pattern the user has not exercised recently.
type DecayingPattern struct {
	Pattern          string
	LastUsedAt       time.Time
	DaysSinceLastUse int
	TimesUsed        int
	SuccessRate      float64
}

// DefaultPattern reports a pattern the user reaches for disproportionately.
type DefaultPattern struct {
	Pattern           string
	TimesChosen       int
	PercentageOfTotal float64

	// ConsecutiveRecent counts the leading run of this pattern across the
	// most recent attempts (capped window) — the current streak, not a
	// lifetime total.
	ConsecutiveRecent int
}

// AvoidedPattern reports a pattern the user rarely picks even when it is
// the canonical answer.
type AvoidedPattern struct {
	Pattern            string
	TimesCorrectAnswer int
	TimesUserChoseIt   int
}

// ConfidenceLevelStats aggregates correctness per self-reported
// confidence level.
type ConfidenceLevelStats struct {
	Level             attempt.Confidence
	Total             int
	Correct           int
	Wrong             int
	CorrectPercentage float64
}

// PatternWeakness flags a calibration problem on one pattern: either
// overconfidence (sure but wrong) or fragility (right but unsure).
type PatternWeakness struct {
	Pattern       string
	TotalAttempts int
	WrongCount    int
	WrongRate     float64
	Insight       string
}

// relevant filters to terminal solved attempts carrying a pattern choice,
// preserving order.
func relevant(history []*attempt.Attempt) []*attempt.Attempt {
	var out []*attempt.Attempt
	for _, a := range history {
		if a.Status == attempt.StatusSolved && a.ChosenPattern != "" {
			out = append(out, a)
		}
	}
	return out
}
