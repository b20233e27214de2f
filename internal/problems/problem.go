package problems

import "fmt"

// Difficulty buckets follow the common interview-site scale.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Problem is a catalog entry. Patterns lists the accepted pattern IDs in
// preference order; the first entry is the canonical correct pattern used
// by the avoided-pattern analysis. KeySignals are the statement cues the
// reflection prompt asks the LLM to compare against the user's reading.
type Problem struct {
	ID         string
	Title      string
	Difficulty Difficulty
	Patterns   []string
	KeySignals []string
}

type catalog struct {
	problems []Problem
	byID     map[string]*Problem
}

var cat *catalog

func buildCatalog(problems []Problem) *catalog {
	c := &catalog{
		problems: problems,
		byID:     make(map[string]*Problem, len(problems)),
	}
	for i := range c.problems {
		c.byID[c.problems[i].ID] = &c.problems[i]
	}
	return c
}

// Get returns the catalog problem with the given ID.
func Get(id string) (Problem, error) {
	p, ok := cat.byID[id]
	if !ok {
		return Problem{}, fmt.Errorf("unknown catalog problem: %q", id)
	}
	return *p, nil
}

// Exists reports whether the catalog contains the given problem ID.
func Exists(id string) bool {
	_, ok := cat.byID[id]
	return ok
}

// All returns every catalog problem in catalog order.
func All() []Problem {
	out := make([]Problem, len(cat.problems))
	copy(out, cat.problems)
	return out
}

// CorrectPattern returns the canonical pattern for a catalog problem.
// The second return is false for external or unknown problems; those
// attempts are excluded from avoided-pattern analysis.
func CorrectPattern(ref Ref) (string, bool) {
	if ref.Kind != RefCatalog {
		return "", false
	}
	p, ok := cat.byID[ref.ID]
	if !ok || len(p.Patterns) == 0 {
		return "", false
	}
	return p.Patterns[0], true
}
