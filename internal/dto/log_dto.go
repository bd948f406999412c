package dto

// ErrorLogRequest is a client-reported error payload.
type ErrorLogRequest struct {
	UserID  string                 `json:"user_id,omitempty"`
	Message string                 `json:"message" validate:"required"`
	Stack   string                 `json:"stack,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// GameSessionLogRequest is a client-reported game-session payload.
type GameSessionLogRequest struct {
	UserID    string                 `json:"user_id" validate:"required"`
	SessionID string                 `json:"session_id" validate:"required"`
	Payload   map[string]interface{} `json:"payload"`
}
