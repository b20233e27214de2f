package insights

import (
	"fmt"
	"sort"

	"deliberate/internal/attempt"
	"deliberate/internal/patterns"
)

// DefaultTopWeaknesses caps how many overconfident/fragile patterns are
// reported.
const DefaultTopWeaknesses = 2

// ConfidenceStats aggregates solved attempts by confidence level. All four
// levels are reported in ordinal order; levels without attempts carry
// zeros.
func ConfidenceStats(history []*attempt.Attempt) []ConfidenceLevelStats {
	byLevel := make(map[attempt.Confidence]*ConfidenceLevelStats)
	for _, a := range history {
		if a.Status != attempt.StatusSolved || a.Confidence.Rank() == 0 {
			continue
		}
		s := byLevel[a.Confidence]
		if s == nil {
			s = &ConfidenceLevelStats{Level: a.Confidence}
			byLevel[a.Confidence] = s
		}
		s.Total++
		if a.PatternCorrect {
			s.Correct++
		} else {
			s.Wrong++
		}
	}

	out := make([]ConfidenceLevelStats, 0, 4)
	for _, level := range attempt.Levels() {
		s := byLevel[level]
		if s == nil {
			s = &ConfidenceLevelStats{Level: level}
		}
		if s.Total > 0 {
			s.CorrectPercentage = float64(s.Correct) / float64(s.Total) * 100
		}
		out = append(out, *s)
	}
	return out
}

// OverconfidentPatterns finds patterns the user picks with high confidence
// yet gets wrong: groups with at least one wrong answer across two or more
// high-confidence attempts, ranked by wrong rate descending, capped at
// topN.
func OverconfidentPatterns(history []*attempt.Attempt, topN int) []PatternWeakness {
	if topN <= 0 {
		topN = DefaultTopWeaknesses
	}

	type group struct {
		total int
		wrong int
	}
	groups := make(map[string]*group)
	for _, a := range relevant(history) {
		if !a.Confidence.High() {
			continue
		}
		g := groups[a.ChosenPattern]
		if g == nil {
			g = &group{}
			groups[a.ChosenPattern] = g
		}
		g.total++
		if !a.PatternCorrect {
			g.wrong++
		}
	}

	var out []PatternWeakness
	for id, g := range groups {
		if g.wrong == 0 || g.total < 2 {
			continue
		}
		rate := float64(g.wrong) / float64(g.total)
		out = append(out, PatternWeakness{
			Pattern:       id,
			TotalAttempts: g.total,
			WrongCount:    g.wrong,
			WrongRate:     rate,
			Insight: fmt.Sprintf(
				"You felt sure about %s on %d attempts but were wrong on %d (%.0f%%). Re-derive the invariant before trusting the reflex.",
				patterns.DisplayName(id), g.total, g.wrong, rate*100),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].WrongRate != out[j].WrongRate {
			return out[i].WrongRate > out[j].WrongRate
		}
		return out[i].Pattern < out[j].Pattern
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// FragilePatterns finds patterns the user keeps getting right while
// reporting low confidence — understanding that works but isn't trusted.
// Groups need two or more such attempts; ranked by attempt count
// descending, capped at topN. By construction every entry is 100% fragile
// (correct answer, low confidence).
func FragilePatterns(history []*attempt.Attempt, topN int) []PatternWeakness {
	if topN <= 0 {
		topN = DefaultTopWeaknesses
	}

	counts := make(map[string]int)
	for _, a := range relevant(history) {
		if a.PatternCorrect && a.Confidence.Low() {
			counts[a.ChosenPattern]++
		}
	}

	var out []PatternWeakness
	for id, n := range counts {
		if n < 2 {
			continue
		}
		out = append(out, PatternWeakness{
			Pattern:       id,
			TotalAttempts: n,
			WrongCount:    0,
			WrongRate:     0,
			Insight: fmt.Sprintf(
				"%s keeps working for you (%d correct) but you still rate it a guess. Your understanding is ahead of your confidence — name why it works.",
				patterns.DisplayName(id), n),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalAttempts != out[j].TotalAttempts {
			return out[i].TotalAttempts > out[j].TotalAttempts
		}
		return out[i].Pattern < out[j].Pattern
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
