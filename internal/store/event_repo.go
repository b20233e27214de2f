package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"deliberate/internal/attempt"
)

// LLMRequestEventData captures one LLM request for auditing.
type LLMRequestEventData struct {
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
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

// LLMUsageStat is aggregated token usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage is aggregated token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QueryOpts controls event queries.
type QueryOpts struct {
	Limit int
}

// EventRepo persists lifecycle and LLM request events.
type EventRepo interface {
	AppendAttemptEvent(ctx context.Context, e attempt.Event) error
	ListAttemptEvents(ctx context.Context, attemptID string) ([]attempt.Event, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

type eventRepo struct {
	db *gorm.DB
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, e attempt.Event) error {
	row := attemptEventRow{
		Kind:      string(e.Kind),
		AttemptID: e.AttemptID,
		UserID:    e.UserID,
		Status:    string(e.Status),
		At:        e.At,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttemptEvents(ctx context.Context, attemptID string) ([]attempt.Event, error) {
	var rows []attemptEventRow
	err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list attempt events: %w", err)
	}
	out := make([]attempt.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, attempt.Event{
			Kind:      attempt.EventKind(row.Kind),
			AttemptID: row.AttemptID,
			UserID:    row.UserID,
			Status:    attempt.Status(row.Status),
			At:        row.At,
		})
	}
	return out, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	row := llmEventRow{
		Timestamp:    time.Now().UTC(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.db.WithContext(ctx).Model(&llmEventRow{}).Order("id DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	var rows []llmEventRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	out := make([]LLMEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, llmEventFromRow(row))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	var row llmEventRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}
	e := llmEventFromRow(row)
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	var stats []LLMUsageStat
	err := r.db.WithContext(ctx).Model(&llmEventRow{}).
		Select(`purpose,
			COUNT(*) AS calls,
			SUM(input_tokens) AS input_tokens,
			SUM(output_tokens) AS output_tokens,
			CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms`).
		Group("purpose").
		Order("calls DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by purpose: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var usage []LLMModelUsage
	err := r.db.WithContext(ctx).Model(&llmEventRow{}).
		Select(`model,
			COUNT(*) AS calls,
			SUM(input_tokens) AS input_tokens,
			SUM(output_tokens) AS output_tokens`).
		Group("model").
		Order("calls DESC").
		Scan(&usage).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by model: %w", err)
	}
	return usage, nil
}

func llmEventFromRow(row llmEventRow) LLMEvent {
	return LLMEvent{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
