package domain

import "strings"

// GameSessionRecord represents one timed run of questions. The question
// list is fixed at creation; answers may be corrected until the session
// is finished, after which the record is immutable.
type GameSessionRecord struct {
	ID               string
	UserID           string
	Level            int
	QuestionIDs      []string
	TimeLimitSeconds int
	Answers          map[string]string
	CorrectCount     int
	Finished         bool
}

// NewGameSession creates an active session over the given question ids.
func NewGameSession(id, userID string, level int, questionIDs []string, timeLimitSeconds int) *GameSessionRecord {
	return &GameSessionRecord{
		ID:               id,
		UserID:           userID,
		Level:            level,
		QuestionIDs:      questionIDs,
		TimeLimitSeconds: timeLimitSeconds,
		Answers:          make(map[string]string),
	}
}

// HasQuestion reports whether the question belongs to this session.
func (s *GameSessionRecord) HasQuestion(questionID string) bool {
	for _, id := range s.QuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// RecordAnswer stores the raw submitted answer for the question and
// keeps CorrectCount equal to the number of questions whose current
// stored answer matches the expected one. Resubmissions adjust the
// count only when correctness flips.
func (s *GameSessionRecord) RecordAnswer(questionID, answer, expected string) bool {
	correct := NormalizeAnswer(answer) == NormalizeAnswer(expected)

	previous, answered := s.Answers[questionID]
	previousCorrect := answered && NormalizeAnswer(previous) == NormalizeAnswer(expected)

	s.Answers[questionID] = answer

	switch {
	case !previousCorrect && correct:
		s.CorrectCount++
	case previousCorrect && !correct:
		s.CorrectCount--
	}
	return correct
}

// NormalizeAnswer trims surrounding whitespace and lower-cases the
// answer for comparison.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
