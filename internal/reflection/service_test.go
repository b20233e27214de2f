package reflection

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"deliberate/internal/llm"
)

func testInput() Input {
	return Input{
		ProblemTitle:      "Subarray Sum Equals K",
		ProblemDifficulty: "medium",
		KeySignals:        []string{"negative numbers allowed", "count of subarrays"},
		CorrectPattern:    "prefix-sum",
		IdentifiedSignals: []string{"contiguous subarray", "running total"},
		ChosenPattern:     "sliding-window",
		RejectedPattern:   "prefix-sum",
		RejectionReason:   "seemed like overkill",
		Confidence:        "confident",
		Outcome:           "failed",
		FirstFailure:      "wrong_invariant",
		ThinkingSeconds:   140,
		TotalSeconds:      1800,
	}
}

func TestAnalyze(t *testing.T) {
	canned := Reflection{
		Feedback:               "Sliding window breaks once negatives appear.",
		CorrectIdentifications: []string{"contiguous subarray"},
		MissedSignals:          []string{"negative numbers allowed"},
		NextTimeAdvice:         "Check whether window shrinking stays monotonic.",
		PatternTips:            "Counting subarrays with a sum target points at prefix sums.",
		ConfidenceCalibration:  "Confident on a failed attempt; slow down on the signal check.",
		IsCorrectPattern:       false,
	}
	body, _ := json.Marshal(canned)

	mock := llm.NewMockProvider(llm.MockResponse{Content: body})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Analyze(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.IsCorrectPattern {
		t.Error("expected IsCorrectPattern = false")
	}
	if len(got.MissedSignals) != 1 || got.MissedSignals[0] != "negative numbers allowed" {
		t.Errorf("MissedSignals = %v", got.MissedSignals)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != ReviewSchema {
		t.Error("request missing review schema")
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{
		"Subarray Sum Equals K",
		"Chosen pattern: sliding-window",
		"Rejected: prefix-sum because: seemed like overkill",
		"Stated confidence: confident",
		"First failure mode: wrong_invariant",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAnalyzeSwitchedApproach(t *testing.T) {
	body, _ := json.Marshal(Reflection{Feedback: "ok", IsCorrectPattern: true})
	mock := llm.NewMockProvider(llm.MockResponse{Content: body})
	svc := NewService(mock, DefaultConfig())

	in := testInput()
	in.SwitchedApproach = true
	in.SwitchReason = "window invariant broke"

	if _, err := svc.Analyze(context.Background(), in); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Switched approach mid-attempt: window invariant broke") {
		t.Errorf("prompt missing switch line:\n%s", prompt)
	}
}

func TestAnalyzeRequiresChosenPattern(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	in := testInput()
	in.ChosenPattern = ""

	if _, err := svc.Analyze(context.Background(), in); err == nil {
		t.Fatal("expected error for missing chosen pattern")
	}
	if mock.CallCount() != 0 {
		t.Error("no LLM call should be made without a chosen pattern")
	}
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Analyze(context.Background(), testInput()); err == nil {
		t.Fatal("expected parse error")
	}
}
