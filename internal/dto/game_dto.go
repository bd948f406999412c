package dto

// StartGameRequest starts a new game session.
type StartGameRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	Level         int    `json:"level" validate:"required"`
	QuestionCount int    `json:"question_count"`
}

// StartGameResponse returns the created session and its question
// views. The expected answers are never included.
type StartGameResponse struct {
	SessionID        string             `json:"session_id"`
	Level            int                `json:"level"`
	TimeLimitSeconds int                `json:"time_limit_seconds"`
	Questions        []QuestionResponse `json:"questions"`
}

// AnswerRequest submits (or corrects) an answer within a session.
type AnswerRequest struct {
	SessionID  string `json:"session_id" validate:"required"`
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

// AnswerResponse reports the correctness of the submission. The
// expected answer is revealed only when the submission was incorrect.
type AnswerResponse struct {
	Correct        bool    `json:"correct"`
	CorrectAnswer  *string `json:"correct_answer,omitempty"`
	CurrentCorrect int     `json:"current_correct"`
}

// FinishGameRequest finalizes a session.
type FinishGameRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// FinishGameResponse is the finish summary with the rewarded xp and
// the profile's new totals.
type FinishGameResponse struct {
	SessionID      string `json:"session_id"`
	UserID         string `json:"user_id"`
	CorrectAnswers int    `json:"correct_answers"`
	TotalQuestions int    `json:"total_questions"`
	XPEarned       int    `json:"xp_earned"`
	TotalXP        int    `json:"total_xp"`
	Level          int    `json:"level"`
}
