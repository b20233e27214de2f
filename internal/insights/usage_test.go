package insights

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"deliberate/internal/attempt"
	"deliberate/internal/problems"
)

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

// solved builds a solved attempt completed daysAgo days before now.
func solved(pattern string, correct bool, daysAgo int) *attempt.Attempt {
	completed := now.AddDate(0, 0, -daysAgo)
	return &attempt.Attempt{
		Status:         attempt.StatusSolved,
		ChosenPattern:  pattern,
		PatternCorrect: correct,
		StartedAt:      completed.Add(-30 * time.Minute),
		CompletedAt:    &completed,
	}
}

func TestDecayingPatterns(t *testing.T) {
	history := []*attempt.Attempt{
		solved("bfs", true, 2),
		solved("sliding-window", true, 45),
		solved("sliding-window", false, 50),
		solved("two-pointers", true, 100),
	}

	got := DecayingPatterns(history, now, 30)
	if len(got) != 2 {
		t.Fatalf("got %d decaying patterns, want 2: %+v", len(got), got)
	}

	// Sorted by days since last use descending.
	if got[0].Pattern != "two-pointers" || got[1].Pattern != "sliding-window" {
		t.Errorf("order = [%s %s], want [two-pointers sliding-window]", got[0].Pattern, got[1].Pattern)
	}
	if got[0].DaysSinceLastUse != 100 {
		t.Errorf("DaysSinceLastUse = %d, want 100", got[0].DaysSinceLastUse)
	}
	if got[1].TimesUsed != 2 {
		t.Errorf("TimesUsed = %d, want 2", got[1].TimesUsed)
	}
	if got[1].SuccessRate != 0.5 {
		t.Errorf("SuccessRate = %v, want 0.5", got[1].SuccessRate)
	}
}

func TestDecayingPatternsIgnoresNonSolved(t *testing.T) {
	abandoned := solved("dfs", false, 90)
	abandoned.Status = attempt.StatusGaveUp

	got := DecayingPatterns([]*attempt.Attempt{abandoned}, now, 30)
	if len(got) != 0 {
		t.Errorf("abandoned attempts must not count: %+v", got)
	}
}

func TestDefaultPatterns(t *testing.T) {
	// Newest first: a three-long leading streak of dfs.
	history := []*attempt.Attempt{
		solved("dfs", true, 1),
		solved("dfs", false, 2),
		solved("dfs", true, 3),
		solved("bfs", true, 4),
		solved("dfs", true, 5),
		solved("binary-search", true, 6),
	}

	got := DefaultPatterns(history, 3)
	if len(got) != 1 {
		t.Fatalf("got %d default patterns, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Pattern != "dfs" {
		t.Errorf("Pattern = %s", d.Pattern)
	}
	if d.TimesChosen != 4 {
		t.Errorf("TimesChosen = %d, want 4 (full history)", d.TimesChosen)
	}
	if d.ConsecutiveRecent != 3 {
		t.Errorf("ConsecutiveRecent = %d, want 3 (leading streak only)", d.ConsecutiveRecent)
	}
	wantPct := 4.0 / 6.0 * 100
	if d.PercentageOfTotal != wantPct {
		t.Errorf("PercentageOfTotal = %v, want %v", d.PercentageOfTotal, wantPct)
	}
}

func TestDefaultPatternsEmptyHistory(t *testing.T) {
	if got := DefaultPatterns(nil, 3); len(got) != 0 {
		t.Errorf("empty history must yield no results, got %+v", got)
	}
}

func TestAvoidedPatterns(t *testing.T) {
	// Five attempts where the canonical answer is sliding-window, user
	// never picked it.
	ref := problems.CatalogRef("longest-substring-without-repeats")
	var history []*attempt.Attempt
	for i := 0; i < 5; i++ {
		a := solved("hash-map-lookup", false, i+1)
		a.Problem = ref
		history = append(history, a)
	}

	got := AvoidedPatterns(history, nil)
	if len(got) != 1 {
		t.Fatalf("got %d avoided patterns, want 1: %+v", len(got), got)
	}
	if got[0].Pattern != "sliding-window" {
		t.Errorf("Pattern = %s, want sliding-window", got[0].Pattern)
	}
	if got[0].TimesCorrectAnswer != 5 || got[0].TimesUserChoseIt != 0 {
		t.Errorf("counts = %d/%d, want 5/0", got[0].TimesCorrectAnswer, got[0].TimesUserChoseIt)
	}
}

func TestAvoidedPatternsThreshold(t *testing.T) {
	resolve := func(problems.Ref) (string, bool) { return "bfs", true }

	// 2 of 5 chosen = 40% ≥ 30%: not avoided.
	history := []*attempt.Attempt{
		solved("bfs", true, 1),
		solved("bfs", true, 2),
		solved("dfs", false, 3),
		solved("dfs", false, 4),
		solved("dfs", false, 5),
	}
	if got := AvoidedPatterns(history, resolve); len(got) != 0 {
		t.Errorf("40%% chosen must not be avoided: %+v", got)
	}

	// 1 of 5 chosen = 20% < 30%: avoided.
	history[1] = solved("dfs", false, 2)
	got := AvoidedPatterns(history, resolve)
	if len(got) != 1 || got[0].TimesUserChoseIt != 1 {
		t.Errorf("20%% chosen must be avoided: %+v", got)
	}
}

func TestAvoidedPatternsSkipsExternalProblems(t *testing.T) {
	a := solved("dfs", true, 1)
	a.Problem = problems.ExternalRef("somewhere/cool-problem")
	if got := AvoidedPatterns([]*attempt.Attempt{a}, nil); len(got) != 0 {
		t.Errorf("external problems have no canonical pattern: %+v", got)
	}
}

func TestCheckNudge(t *testing.T) {
	history := []*attempt.Attempt{
		solved("sliding-window", true, 1),
		solved("sliding-window", false, 2),
		solved("sliding-window", true, 3),
		solved("bfs", true, 4),
	}

	msg, ok := CheckNudge(history, "sliding-window", 3)
	if !ok {
		t.Fatal("expected a nudge for a 3-long streak")
	}
	if !strings.Contains(msg, "3") {
		t.Errorf("nudge %q does not reference the streak length", msg)
	}
	if !strings.Contains(msg, "Sliding Window") {
		t.Errorf("nudge %q does not name the pattern", msg)
	}

	if _, ok := CheckNudge(history, "bfs", 3); ok {
		t.Error("no nudge expected for a pattern outside the streak")
	}
	if _, ok := CheckNudge(history[:2], "sliding-window", 3); ok {
		t.Error("no nudge expected with fewer attempts than the threshold")
	}
}

func TestUsageAnalyticsPure(t *testing.T) {
	history := []*attempt.Attempt{
		solved("dfs", true, 1),
		solved("dfs", false, 40),
		solved("bfs", true, 2),
		solved("dfs", true, 3),
		solved("two-pointers", false, 90),
	}

	decay1 := DecayingPatterns(history, now, 30)
	decay2 := DecayingPatterns(history, now, 30)
	if !reflect.DeepEqual(decay1, decay2) {
		t.Error("DecayingPatterns is not deterministic")
	}

	def1 := DefaultPatterns(history, 3)
	def2 := DefaultPatterns(history, 3)
	if !reflect.DeepEqual(def1, def2) {
		t.Error("DefaultPatterns is not deterministic")
	}

	av1 := AvoidedPatterns(history, nil)
	av2 := AvoidedPatterns(history, nil)
	if !reflect.DeepEqual(av1, av2) {
		t.Error("AvoidedPatterns is not deterministic")
	}
}
