package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deliberate/internal/attempt"
)

// AttemptRepo persists attempt aggregates.
type AttemptRepo interface {
	// Create inserts a new attempt. Returns an active-attempt error when the
	// user already has a non-terminal attempt.
	Create(ctx context.Context, a *attempt.Attempt) error
	// GetByID returns the attempt or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*attempt.Attempt, error)
	// Update writes the current aggregate state. The cold start submission
	// is insert-only: once stored it is never modified.
	Update(ctx context.Context, a *attempt.Attempt) error
	// Active returns the user's non-terminal attempt, or (nil, nil).
	Active(ctx context.Context, userID string) (*attempt.Attempt, error)
	// ListByUser returns all attempts for the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*attempt.Attempt, error)
	// ListRecentByUser returns up to n terminal attempts, newest first.
	ListRecentByUser(ctx context.Context, userID string, n int) ([]*attempt.Attempt, error)
}

type attemptRepo struct {
	db *gorm.DB
}

func (r *attemptRepo) Create(ctx context.Context, a *attempt.Attempt) error {
	row := rowFromAttempt(a)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isActiveAttemptConflict(err) {
			return attempt.ErrActiveAttempt(a.UserID)
		}
		return fmt.Errorf("create attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) GetByID(ctx context.Context, id string) (*attempt.Attempt, error) {
	var row attemptRow
	err := r.db.WithContext(ctx).Preload("ColdStart").First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func (r *attemptRepo) Update(ctx context.Context, a *attempt.Attempt) error {
	row := rowFromAttempt(a)
	cs := row.ColdStart
	row.ColdStart = nil

	err := r.db.WithContext(ctx).
		Omit("created_at", "ColdStart").
		Save(row).Error
	if err != nil {
		return fmt.Errorf("update attempt %s: %w", a.ID, err)
	}

	if cs != nil {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attempt_id"}},
			DoNothing: true,
		}).Create(cs).Error
		if err != nil {
			return fmt.Errorf("store cold start for attempt %s: %w", a.ID, err)
		}
	}
	return nil
}

func (r *attemptRepo) Active(ctx context.Context, userID string) (*attempt.Attempt, error) {
	var row attemptRow
	err := r.db.WithContext(ctx).Preload("ColdStart").
		Where("user_id = ? AND status IN ?", userID, []string{
			string(attempt.StatusInProgress),
			string(attempt.StatusColdStartCompleted),
		}).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active attempt for %s: %w", userID, err)
	}
	return row.toDomain(), nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string) ([]*attempt.Attempt, error) {
	var rows []attemptRow
	err := r.db.WithContext(ctx).Preload("ColdStart").
		Where("user_id = ?", userID).
		Order("started_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list attempts for %s: %w", userID, err)
	}
	return toDomainSlice(rows), nil
}

func (r *attemptRepo) ListRecentByUser(ctx context.Context, userID string, n int) ([]*attempt.Attempt, error) {
	var rows []attemptRow
	err := r.db.WithContext(ctx).Preload("ColdStart").
		Where("user_id = ? AND status IN ?", userID, []string{
			string(attempt.StatusSolved),
			string(attempt.StatusGaveUp),
			string(attempt.StatusTimedOut),
		}).
		Order("completed_at DESC, id DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recent attempts for %s: %w", userID, err)
	}
	return toDomainSlice(rows), nil
}

func toDomainSlice(rows []attemptRow) []*attempt.Attempt {
	out := make([]*attempt.Attempt, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out
}

// isActiveAttemptConflict reports whether err is a violation of the
// one-active-attempt unique index.
func isActiveAttemptConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") &&
		(strings.Contains(msg, "attempts.user_id") || strings.Contains(msg, "idx_attempts_one_active"))
}
