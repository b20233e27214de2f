package service

import (
	"context"

	"deliberate/internal/attempt"
	"deliberate/internal/insights"
	"deliberate/internal/problems"
)

// UsageReport bundles the pattern-usage analytics for one user.
type UsageReport struct {
	Decaying []insights.DecayingPattern
	Defaults []insights.DefaultPattern
	Avoided  []insights.AvoidedPattern
}

// Usage computes pattern-usage insights over the user's full history.
func (s *AttemptService) Usage(ctx context.Context, userID string) (*UsageReport, error) {
	history, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UsageReport{
		Decaying: insights.DecayingPatterns(history, s.now(), insights.DefaultDecayDays),
		Defaults: insights.DefaultPatterns(history, insights.DefaultMinOccurrences),
		Avoided:  insights.AvoidedPatterns(history, problems.CorrectPattern),
	}, nil
}

// CalibrationReport bundles the confidence analytics for one user.
type CalibrationReport struct {
	Levels        []insights.ConfidenceLevelStats
	Overconfident []insights.PatternWeakness
	Fragile       []insights.PatternWeakness
}

// Calibration computes confidence-calibration insights over the user's
// full history.
func (s *AttemptService) Calibration(ctx context.Context, userID string) (*CalibrationReport, error) {
	history, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CalibrationReport{
		Levels:        insights.ConfidenceStats(history),
		Overconfident: insights.OverconfidentPatterns(history, insights.DefaultTopWeaknesses),
		Fragile:       insights.FragilePatterns(history, insights.DefaultTopWeaknesses),
	}, nil
}

func insightsNudge(history []*attempt.Attempt, pattern string) (string, bool) {
	return insights.CheckNudge(history, pattern, insights.DefaultNudgeThreshold)
}
