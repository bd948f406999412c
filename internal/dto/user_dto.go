package dto

// CreateProfileRequest is the request body for explicit profile
// creation. Absent fields fall back to the documented defaults.
type CreateProfileRequest struct {
	Email                 string         `json:"email,omitempty"`
	DisplayName           string         `json:"display_name,omitempty"`
	Language              string         `json:"language,omitempty"`
	XP                    *int           `json:"xp,omitempty"`
	Level                 *int           `json:"level,omitempty"`
	Progress              map[string]int `json:"progress,omitempty"`
	CurrentStreak         *int           `json:"current_streak,omitempty"`
	LongestStreak         *int           `json:"longest_streak,omitempty"`
	LastLoginDate         string         `json:"last_login_date,omitempty"`
	LessonsCompletedToday *int           `json:"lessons_completed_today,omitempty"`
	LastLessonDate        string         `json:"last_lesson_date,omitempty"`
}

// UpdateProfileRequest is a partial profile update; a nil field means
// "leave unchanged".
type UpdateProfileRequest struct {
	DisplayName           *string        `json:"display_name,omitempty"`
	Language              *string        `json:"language,omitempty"`
	XP                    *int           `json:"xp,omitempty"`
	Level                 *int           `json:"level,omitempty"`
	Progress              map[string]int `json:"progress,omitempty"`
	CurrentStreak         *int           `json:"current_streak,omitempty"`
	LongestStreak         *int           `json:"longest_streak,omitempty"`
	LastLoginDate         *string        `json:"last_login_date,omitempty"`
	LessonsCompletedToday *int           `json:"lessons_completed_today,omitempty"`
	LastLessonDate        *string        `json:"last_lesson_date,omitempty"`
}

// ProfileResponse is the full profile view.
type ProfileResponse struct {
	ID                    string         `json:"id"`
	Email                 string         `json:"email,omitempty"`
	DisplayName           string         `json:"display_name,omitempty"`
	Language              string         `json:"language,omitempty"`
	XP                    int            `json:"xp"`
	Level                 int            `json:"level"`
	Progress              map[string]int `json:"progress"`
	CurrentStreak         int            `json:"current_streak"`
	LongestStreak         int            `json:"longest_streak"`
	LastLoginDate         string         `json:"last_login_date,omitempty"`
	LessonsCompletedToday int            `json:"lessons_completed_today"`
	LastLessonDate        string         `json:"last_lesson_date,omitempty"`
}

// UserStatsResponse exposes the per-player game counters.
type UserStatsResponse struct {
	UserID            string  `json:"user_id"`
	GamesPlayed       int     `json:"games_played"`
	QuestionsAnswered int     `json:"questions_answered"`
	CorrectAnswers    int     `json:"correct_answers"`
	Accuracy          float64 `json:"accuracy"`
}
