// Package reflection generates LLM-backed post-attempt reviews: what the
// learner read correctly in the problem, what they missed, and how well
// their stated confidence matched the outcome.
package reflection

// Input carries everything the reviewer needs about a finished attempt.
type Input struct {
	ProblemTitle      string
	ProblemDifficulty string
	KeySignals        []string
	CorrectPattern    string

	IdentifiedSignals []string
	ChosenPattern     string
	SecondaryPattern  string
	RejectedPattern   string
	RejectionReason   string
	Confidence        string
	Outcome           string
	FirstFailure      string
	SwitchedApproach  bool
	SwitchReason      string
	ThinkingSeconds   int
	TotalSeconds      int
}

// Reflection is the structured review returned by the LLM.
type Reflection struct {
	Feedback               string   `json:"feedback"`
	CorrectIdentifications []string `json:"correct_identifications"`
	MissedSignals          []string `json:"missed_signals"`
	NextTimeAdvice         string   `json:"next_time_advice"`
	PatternTips            string   `json:"pattern_tips"`
	ConfidenceCalibration  string   `json:"confidence_calibration"`
	IsCorrectPattern       bool     `json:"is_correct_pattern"`
}
