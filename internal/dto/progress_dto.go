package dto

// ProgressUpdateRequest applies an xp delta and merges lesson progress.
type ProgressUpdateRequest struct {
	UserID   string         `json:"user_id" validate:"required"`
	XPDelta  int            `json:"xp_delta"`
	Progress map[string]int `json:"progress,omitempty"`
}

// ProgressResponse is the progression view of a profile.
type ProgressResponse struct {
	UserID   string         `json:"user_id"`
	XP       int            `json:"xp"`
	Level    int            `json:"level"`
	Progress map[string]int `json:"progress"`
}
