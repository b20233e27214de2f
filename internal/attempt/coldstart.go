package attempt

import "fmt"

// ToleranceSeconds absorbs client/server clock skew when comparing the
// reported thinking duration against the adaptive minimum.
const ToleranceSeconds = 5

// ValidateColdStart checks a submission against the adaptive minimum and
// the structural rules: a primary pattern is required, and the secondary
// and rejected alternatives must differ from it. Whether the referenced
// pattern IDs exist in the catalog is the caller's check; the gate only
// owns presence and distinctness.
func ValidateColdStart(sub ColdStartSubmission, minimumSeconds int) error {
	if sub.ChosenPattern == "" {
		return fmt.Errorf("a chosen pattern is required")
	}
	if sub.SecondaryPattern != "" && sub.SecondaryPattern == sub.ChosenPattern {
		return fmt.Errorf("secondary pattern must differ from the chosen pattern")
	}
	if sub.RejectedPattern != "" && sub.RejectedPattern == sub.ChosenPattern {
		return fmt.Errorf("rejected pattern must differ from the chosen pattern")
	}
	if sub.ThinkingDurationSeconds < minimumSeconds-ToleranceSeconds {
		return newError(KindColdStartTooShort,
			"cold start thinking phase must be at least %ds (spent %ds)",
			minimumSeconds, sub.ThinkingDurationSeconds)
	}
	return nil
}
