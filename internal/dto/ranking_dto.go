package dto

// RankingUpdateRequest upserts a leaderboard entry. XP and Level are
// required only when no profile exists for the user.
type RankingUpdateRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	XP          *int    `json:"xp,omitempty"`
	Level       *int    `json:"level,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

// RankingEntryResponse is a leaderboard entry decorated with its
// 1-based position.
type RankingEntryResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
	Position    int    `json:"position"`
	UpdatedAt   string `json:"updated_at"`
}
