package models

// User lifecycle event types published to Kafka.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// UserEvent notifies downstream consumers (game service, mail, analytics)
// about account lifecycle changes. Publishing is best-effort and never part
// of the request outcome.
type UserEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the EventUser* constants
	UserID    string `json:"user_id"`   // Affected account
	Email     string `json:"email"`     // Login key at the time of the event
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
