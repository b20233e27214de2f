package attempt

// Adaptive cold-start threshold. The minimum thinking time scales with
// recent struggle so a user on a losing streak cannot rush the commit.
// Recomputed from history on every submission, never cached.

const (
	// ThresholdSampleSize is how many recent terminal attempts to sample.
	ThresholdSampleSize = 10

	// minSampleForAdaptive is the history size below which the new-user
	// baseline applies regardless of accuracy.
	minSampleForAdaptive = 5

	// BaselineMinimumSeconds applies to new users and accurate ones.
	BaselineMinimumSeconds = 30
	// ElevatedMinimumSeconds applies at middling accuracy, and when the
	// sample holds no solved attempts at all (e.g. all abandoned).
	ElevatedMinimumSeconds = 90
	// StrictMinimumSeconds applies when accuracy drops below half.
	StrictMinimumSeconds = 180

	accuracyHighWater = 0.70
	accuracyLowWater  = 0.50
)

// AdaptiveMinimumSeconds computes the cold-start floor from the user's
// recent terminal attempts, newest first. Only the first
// ThresholdSampleSize entries are considered; accuracy is measured over
// the solved attempts within that sample. Deterministic for a fixed
// history snapshot.
func AdaptiveMinimumSeconds(recent []*Attempt) int {
	if len(recent) > ThresholdSampleSize {
		recent = recent[:ThresholdSampleSize]
	}
	if len(recent) < minSampleForAdaptive {
		return BaselineMinimumSeconds
	}

	solved, correct := 0, 0
	for _, a := range recent {
		if a.Status != StatusSolved {
			continue
		}
		solved++
		if a.PatternCorrect {
			correct++
		}
	}
	if solved == 0 {
		return ElevatedMinimumSeconds
	}

	accuracy := float64(correct) / float64(solved)
	switch {
	case accuracy >= accuracyHighWater:
		return BaselineMinimumSeconds
	case accuracy >= accuracyLowWater:
		return ElevatedMinimumSeconds
	default:
		return StrictMinimumSeconds
	}
}
