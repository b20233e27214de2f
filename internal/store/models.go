package store

import (
	"time"

	"gorm.io/datatypes"

	"deliberate/internal/attempt"
	"deliberate/internal/problems"
)

// attemptRow is the persisted shape of an attempt. The domain aggregate is
// the source of truth; rows exist only at this boundary.
type attemptRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"not null;index"`
	ProblemKind string `gorm:"not null"`
	ProblemID   string `gorm:"not null"`

	Status           string `gorm:"not null;index"`
	StartedAt        time.Time
	CompletedAt      *time.Time
	TotalTimeSeconds *int

	ChosenPattern    string
	PatternCorrect   bool
	Confidence       string
	Outcome          string
	FirstFailure     string
	SwitchedApproach *bool
	SwitchReason     string

	ColdStart *coldStartRow `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (attemptRow) TableName() string { return "attempts" }

// coldStartRow is the owned 0..1 submission. Never updated after insert.
type coldStartRow struct {
	ID        uint   `gorm:"primaryKey"`
	AttemptID string `gorm:"uniqueIndex;size:36;not null"`

	SubmittedAt             time.Time
	ThinkingDurationSeconds int
	IdentifiedSignals       datatypes.JSONSlice[string]

	ChosenPattern            string `gorm:"not null"`
	SecondaryPattern         string
	PrimaryVsSecondaryReason string
	RejectedPattern          string
	RejectionReason          string
	Confidence               string
}

func (coldStartRow) TableName() string { return "cold_start_submissions" }

// attemptEventRow records lifecycle events for external observation.
type attemptEventRow struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"not null"`
	AttemptID string `gorm:"not null;index;size:36"`
	UserID    string `gorm:"not null;index"`
	Status    string
	At        time.Time
}

func (attemptEventRow) TableName() string { return "attempt_events" }

// llmEventRow is the audit record for a single LLM request.
type llmEventRow struct {
	ID        int `gorm:"primaryKey"`
	Timestamp time.Time

	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

func (llmEventRow) TableName() string { return "llm_events" }

func rowFromAttempt(a *attempt.Attempt) *attemptRow {
	row := &attemptRow{
		ID:               a.ID,
		UserID:           a.UserID,
		ProblemKind:      string(a.Problem.Kind),
		ProblemID:        a.Problem.ID,
		Status:           string(a.Status),
		StartedAt:        a.StartedAt,
		CompletedAt:      a.CompletedAt,
		TotalTimeSeconds: a.TotalTimeSeconds,
		ChosenPattern:    a.ChosenPattern,
		PatternCorrect:   a.PatternCorrect,
		Confidence:       string(a.Confidence),
		Outcome:          string(a.Outcome),
		FirstFailure:     string(a.FirstFailure),
		SwitchedApproach: a.SwitchedApproach,
		SwitchReason:     a.SwitchReason,
	}
	if a.ColdStart != nil {
		cs := a.ColdStart
		row.ColdStart = &coldStartRow{
			AttemptID:                a.ID,
			SubmittedAt:              cs.SubmittedAt,
			ThinkingDurationSeconds:  cs.ThinkingDurationSeconds,
			IdentifiedSignals:        datatypes.NewJSONSlice(cs.IdentifiedSignals),
			ChosenPattern:            cs.ChosenPattern,
			SecondaryPattern:         cs.SecondaryPattern,
			PrimaryVsSecondaryReason: cs.PrimaryVsSecondaryReason,
			RejectedPattern:          cs.RejectedPattern,
			RejectionReason:          cs.RejectionReason,
			Confidence:               string(cs.Confidence),
		}
	}
	return row
}

func (r *attemptRow) toDomain() *attempt.Attempt {
	a := &attempt.Attempt{
		ID:               r.ID,
		UserID:           r.UserID,
		Problem:          problems.Ref{Kind: problems.RefKind(r.ProblemKind), ID: r.ProblemID},
		Status:           attempt.Status(r.Status),
		StartedAt:        r.StartedAt,
		CompletedAt:      r.CompletedAt,
		TotalTimeSeconds: r.TotalTimeSeconds,
		ChosenPattern:    r.ChosenPattern,
		PatternCorrect:   r.PatternCorrect,
		Confidence:       attempt.Confidence(r.Confidence),
		Outcome:          attempt.Outcome(r.Outcome),
		FirstFailure:     attempt.FirstFailure(r.FirstFailure),
		SwitchedApproach: r.SwitchedApproach,
		SwitchReason:     r.SwitchReason,
	}
	if r.ColdStart != nil {
		cs := r.ColdStart
		a.ColdStart = &attempt.ColdStartSubmission{
			SubmittedAt:              cs.SubmittedAt,
			ThinkingDurationSeconds:  cs.ThinkingDurationSeconds,
			IdentifiedSignals:        []string(cs.IdentifiedSignals),
			ChosenPattern:            cs.ChosenPattern,
			SecondaryPattern:         cs.SecondaryPattern,
			PrimaryVsSecondaryReason: cs.PrimaryVsSecondaryReason,
			RejectedPattern:          cs.RejectedPattern,
			RejectionReason:          cs.RejectionReason,
			Confidence:               attempt.Confidence(cs.Confidence),
		}
	}
	return a
}
