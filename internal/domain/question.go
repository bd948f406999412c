package domain

// QuestionRecord represents a question in the bank. Records are static
// seed data and read-only at request time. Seed content is trusted to
// list the expected answer among the choices; the engines do not
// enforce it.
type QuestionRecord struct {
	ID      string
	Level   int
	Prompt  string
	Choices []string
	Answer  string
}
