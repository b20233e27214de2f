package attempt

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the expected business-rule violations. Programmer
// errors (empty identifiers, malformed refs) are plain errors instead.
type ErrorKind string

const (
	// KindInvalidStatusTransition: cold start submitted outside InProgress.
	KindInvalidStatusTransition ErrorKind = "invalid_status_transition"
	// KindColdStartRequired: completion attempted before cold start.
	KindColdStartRequired ErrorKind = "cold_start_required"
	// KindColdStartTooShort: thinking duration below the adaptive minimum.
	KindColdStartTooShort ErrorKind = "cold_start_too_short"
	// KindAlreadyCompleted: give-up or timeout on a terminal attempt.
	KindAlreadyCompleted ErrorKind = "already_completed"
	// KindActiveAttemptExists: creation while a non-terminal attempt exists.
	// Enforced by the caller against the store; defined here so every layer
	// names the same condition.
	KindActiveAttemptExists ErrorKind = "active_attempt_exists"
)

// Error is a business-rule violation with a user-presentable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// ErrActiveAttempt builds the cross-aggregate violation the caller surfaces
// when a user already has a non-terminal attempt.
func ErrActiveAttempt(userID string) *Error {
	return newError(KindActiveAttemptExists,
		"user %s already has an attempt in progress; finish or abandon it first", userID)
}
