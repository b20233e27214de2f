package attempt

import "time"

// EventKind names a lifecycle event.
type EventKind string

const (
	EventStarted            EventKind = "attempt_started"
	EventColdStartCompleted EventKind = "cold_start_completed"
	EventCompleted          EventKind = "attempt_completed"
)

// Event records a successful lifecycle transition. Operations return events
// instead of accumulating them on the aggregate, so the caller decides how
// (and whether) to publish them; they are observational only.
type Event struct {
	Kind      EventKind
	AttemptID string
	UserID    string
	Status    Status
	At        time.Time
}

func event(kind EventKind, a *Attempt, at time.Time) Event {
	return Event{
		Kind:      kind,
		AttemptID: a.ID,
		UserID:    a.UserID,
		Status:    a.Status,
		At:        at,
	}
}
