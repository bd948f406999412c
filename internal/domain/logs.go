package domain

import "time"

// ErrorLog is a client-reported error payload, recorded fire-and-forget.
type ErrorLog struct {
	Timestamp time.Time
	UserID    string
	Message   string
	Stack     string
	Context   map[string]interface{}
}

// GameSessionLog is a client-reported session payload, recorded
// fire-and-forget.
type GameSessionLog struct {
	Timestamp time.Time
	UserID    string
	SessionID string
	Payload   map[string]interface{}
}
