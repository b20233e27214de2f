package problems

import (
	"testing"

	"deliberate/internal/patterns"
)

func TestCatalogPatternsResolve(t *testing.T) {
	for _, p := range All() {
		if len(p.Patterns) == 0 {
			t.Errorf("problem %s has no patterns", p.ID)
		}
		for _, pat := range p.Patterns {
			if !patterns.Exists(pat) {
				t.Errorf("problem %s references unknown pattern %q", p.ID, pat)
			}
		}
		if len(p.KeySignals) == 0 {
			t.Errorf("problem %s has no key signals", p.ID)
		}
	}
}

func TestRefValidate(t *testing.T) {
	tests := []struct {
		name    string
		ref     Ref
		wantErr bool
	}{
		{"catalog ok", CatalogRef("two-sum"), false},
		{"external ok", ExternalRef("leetcode.com/problems/lru-cache"), false},
		{"empty id", Ref{Kind: RefCatalog}, true},
		{"bad kind", Ref{Kind: "remote", ID: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ref.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCorrectPattern(t *testing.T) {
	got, ok := CorrectPattern(CatalogRef("coin-change"))
	if !ok || got != "dynamic-programming" {
		t.Errorf("CorrectPattern(coin-change) = %q, %v", got, ok)
	}

	if _, ok := CorrectPattern(ExternalRef("somewhere")); ok {
		t.Error("external refs must not resolve a correct pattern")
	}
	if _, ok := CorrectPattern(CatalogRef("missing")); ok {
		t.Error("unknown catalog IDs must not resolve a correct pattern")
	}
}

func TestRefTitle(t *testing.T) {
	if got := CatalogRef("two-sum").Title(); got != "Two Sum" {
		t.Errorf("Title = %q", got)
	}
	if got := ExternalRef("lru-cache").Title(); got != "lru-cache" {
		t.Errorf("external Title = %q", got)
	}
}
