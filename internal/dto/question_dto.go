package dto

// QuestionResponse is the public view of a question; it never carries
// the expected answer.
type QuestionResponse struct {
	ID      string   `json:"id"`
	Level   int      `json:"level"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}
