package patterns

import (
	"fmt"
	"sort"
)

// Category groups patterns by the data shape they usually apply to.
type Category string

const (
	CategoryArray    Category = "arrays-and-strings"
	CategoryPointers Category = "pointers-and-windows"
	CategoryTree     Category = "trees"
	CategoryGraph    Category = "graphs"
	CategorySearch   Category = "search"
	CategoryDP       Category = "dynamic-programming"
	CategoryHeap     Category = "heaps-and-intervals"
	CategoryOther    Category = "other"
)

// Pattern is a named algorithmic technique tracked by the app.
// KeySignals are the problem-statement cues that suggest the pattern;
// they feed both the cold-start prompt and the LLM reflection input.
type Pattern struct {
	ID          string
	Name        string
	Category    Category
	Description string
	KeySignals  []string
}

// registry holds the compiled-in pattern catalog with an ID index.
type registry struct {
	patterns []Pattern
	byID     map[string]*Pattern
}

var reg *registry

func buildRegistry(patterns []Pattern) *registry {
	r := &registry{
		patterns: patterns,
		byID:     make(map[string]*Pattern, len(patterns)),
	}
	for i := range r.patterns {
		r.byID[r.patterns[i].ID] = &r.patterns[i]
	}
	return r
}

// Get returns the pattern with the given ID.
func Get(id string) (Pattern, error) {
	p, ok := reg.byID[id]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern: %q", id)
	}
	return *p, nil
}

// Exists reports whether a pattern with the given ID is in the catalog.
func Exists(id string) bool {
	_, ok := reg.byID[id]
	return ok
}

// All returns every pattern in catalog order.
func All() []Pattern {
	out := make([]Pattern, len(reg.patterns))
	copy(out, reg.patterns)
	return out
}

// ByCategory returns patterns in the given category, sorted by name.
func ByCategory(c Category) []Pattern {
	var out []Pattern
	for _, p := range reg.patterns {
		if p.Category == c {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryArray,
		CategoryPointers,
		CategoryTree,
		CategoryGraph,
		CategorySearch,
		CategoryDP,
		CategoryHeap,
		CategoryOther,
	}
}

// DisplayName returns the pattern's human-readable name, or the raw ID if
// the pattern is not in the catalog.
func DisplayName(id string) string {
	if p, ok := reg.byID[id]; ok {
		return p.Name
	}
	return id
}
