package patterns

import "testing"

func TestGetKnownPattern(t *testing.T) {
	p, err := Get("sliding-window")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "Sliding Window" {
		t.Errorf("Name = %q, want Sliding Window", p.Name)
	}
	if len(p.KeySignals) == 0 {
		t.Error("expected key signals")
	}
}

func TestGetUnknownPattern(t *testing.T) {
	if _, err := Get("quantum-annealing"); err == nil {
		t.Error("expected error for unknown pattern")
	}
	if Exists("quantum-annealing") {
		t.Error("Exists should be false for unknown pattern")
	}
}

func TestAllPatternsWellFormed(t *testing.T) {
	all := All()
	if len(all) < 15 {
		t.Fatalf("catalog has %d patterns, want at least 15", len(all))
	}
	seen := make(map[string]bool)
	for _, p := range all {
		if p.ID == "" || p.Name == "" || p.Description == "" {
			t.Errorf("pattern %+v has empty required field", p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate pattern ID %q", p.ID)
		}
		seen[p.ID] = true
		if len(p.KeySignals) == 0 {
			t.Errorf("pattern %s has no key signals", p.ID)
		}
	}
}

func TestDisplayNameFallsBackToID(t *testing.T) {
	if got := DisplayName("bfs"); got != "Breadth-First Search" {
		t.Errorf("DisplayName(bfs) = %q", got)
	}
	if got := DisplayName("not-a-pattern"); got != "not-a-pattern" {
		t.Errorf("DisplayName fallback = %q", got)
	}
}
