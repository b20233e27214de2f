package insights

import (
	"fmt"
	"sort"
	"time"

	"deliberate/internal/attempt"
	"deliberate/internal/patterns"
	"deliberate/internal/problems"
)

const (
	// DefaultDecayDays is the recency window beyond which a pattern
	// counts as decaying.
	DefaultDecayDays = 30

	// DefaultMinOccurrences is the qualifying floor for default-pattern
	// detection.
	DefaultMinOccurrences = 3

	// DefaultNudgeThreshold is the streak length that triggers a nudge.
	DefaultNudgeThreshold = 3

	// streakWindow caps how far back the consecutive-choice scan looks.
	streakWindow = 10

	// avoidedChoiceRate: chosen in under this share of the attempts where
	// it was the correct answer counts as avoided.
	avoidedChoiceRate = 0.30
)

// DecayingPatterns returns patterns last used before now-daysThreshold,
// sorted by days-since-last-use descending (ties by pattern ID).
func DecayingPatterns(history []*attempt.Attempt, now time.Time, daysThreshold int) []DecayingPattern {
	if daysThreshold <= 0 {
		daysThreshold = DefaultDecayDays
	}

	type group struct {
		lastUsed time.Time
		total    int
		correct  int
	}
	groups := make(map[string]*group)
	for _, a := range relevant(history) {
		if a.CompletedAt == nil {
			continue
		}
		g := groups[a.ChosenPattern]
		if g == nil {
			g = &group{}
			groups[a.ChosenPattern] = g
		}
		g.total++
		if a.PatternCorrect {
			g.correct++
		}
		if a.CompletedAt.After(g.lastUsed) {
			g.lastUsed = *a.CompletedAt
		}
	}

	cutoff := now.AddDate(0, 0, -daysThreshold)
	var out []DecayingPattern
	for id, g := range groups {
		if !g.lastUsed.Before(cutoff) {
			continue
		}
		out = append(out, DecayingPattern{
			Pattern:          id,
			LastUsedAt:       g.lastUsed,
			DaysSinceLastUse: int(now.Sub(g.lastUsed).Hours() / 24),
			TimesUsed:        g.total,
			SuccessRate:      float64(g.correct) / float64(g.total),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysSinceLastUse != out[j].DaysSinceLastUse {
			return out[i].DaysSinceLastUse > out[j].DaysSinceLastUse
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}

// DefaultPatterns returns patterns chosen at least minOccurrences times,
// sorted by share of total attempts descending (ties by pattern ID).
// TimesChosen covers the full history; ConsecutiveRecent only the last
// streakWindow attempts.
func DefaultPatterns(history []*attempt.Attempt, minOccurrences int) []DefaultPattern {
	if minOccurrences <= 0 {
		minOccurrences = DefaultMinOccurrences
	}

	qualifying := relevant(history)
	if len(qualifying) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, a := range qualifying {
		counts[a.ChosenPattern]++
	}

	// Leading run over the recent window, newest first.
	leading, run := qualifying[0].ChosenPattern, 0
	for i, a := range qualifying {
		if i >= streakWindow || a.ChosenPattern != leading {
			break
		}
		run++
	}

	var out []DefaultPattern
	for id, n := range counts {
		if n < minOccurrences {
			continue
		}
		streak := 0
		if id == leading {
			streak = run
		}
		out = append(out, DefaultPattern{
			Pattern:           id,
			TimesChosen:       n,
			PercentageOfTotal: float64(n) / float64(len(qualifying)) * 100,
			ConsecutiveRecent: streak,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PercentageOfTotal != out[j].PercentageOfTotal {
			return out[i].PercentageOfTotal > out[j].PercentageOfTotal
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}

// AvoidedPatterns returns patterns the user chose in under 30% of the
// attempts where that pattern was the canonical answer, zero choices
// included. resolve maps a problem ref to its correct pattern; attempts
// whose problem has none are skipped. Sorted by times-correct-answer
// descending (ties by pattern ID).
func AvoidedPatterns(history []*attempt.Attempt, resolve func(problems.Ref) (string, bool)) []AvoidedPattern {
	if resolve == nil {
		resolve = problems.CorrectPattern
	}

	type group struct {
		asAnswer int
		chosen   int
	}
	groups := make(map[string]*group)
	for _, a := range relevant(history) {
		correct, ok := resolve(a.Problem)
		if !ok {
			continue
		}
		g := groups[correct]
		if g == nil {
			g = &group{}
			groups[correct] = g
		}
		g.asAnswer++
		if a.ChosenPattern == correct {
			g.chosen++
		}
	}

	var out []AvoidedPattern
	for id, g := range groups {
		if float64(g.chosen) >= avoidedChoiceRate*float64(g.asAnswer) {
			continue
		}
		out = append(out, AvoidedPattern{
			Pattern:            id,
			TimesCorrectAnswer: g.asAnswer,
			TimesUserChoseIt:   g.chosen,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TimesCorrectAnswer != out[j].TimesCorrectAnswer {
			return out[i].TimesCorrectAnswer > out[j].TimesCorrectAnswer
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}

// CheckNudge returns a warning when the user's last threshold solved
// attempts all chose exactly the candidate pattern. The empty string and
// false mean no nudge.
func CheckNudge(history []*attempt.Attempt, pattern string, threshold int) (string, bool) {
	if threshold <= 0 {
		threshold = DefaultNudgeThreshold
	}

	recent := relevant(history)
	if len(recent) < threshold {
		return "", false
	}
	for _, a := range recent[:threshold] {
		if a.ChosenPattern != pattern {
			return "", false
		}
	}

	return fmt.Sprintf(
		"You've reached for %s on your last %d attempts. Is it the right tool here, or the comfortable one?",
		patterns.DisplayName(pattern), threshold), true
}
