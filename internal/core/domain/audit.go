package domain

import "time"

// AuthAction labels entries in the audit trail.
type AuthAction string

const (
	ActionRegistered   AuthAction = "registered"
	ActionLoginSuccess AuthAction = "login_success"
	ActionLoginFailure AuthAction = "login_failure"
)

// AuthEvent is an audit record of a single authentication attempt.
type AuthEvent struct {
	Email      string     `json:"email"`
	Action     AuthAction `json:"action"`
	OccurredAt time.Time  `json:"occurred_at"`
}
