package service

import (
	"context"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
)

// QuestionService defines the read-only interface over the question
// bank.
type QuestionService interface {
	ListByLevel(ctx context.Context, level int) ([]dto.QuestionResponse, error)
	Get(ctx context.Context, questionID string) (*dto.QuestionResponse, error)
}

type questionServiceImpl struct {
	questions domain.QuestionRepository
	txm       domain.TransactionManager
}

// NewQuestionService creates a new instance of QuestionService.
func NewQuestionService(questions domain.QuestionRepository, txm domain.TransactionManager) QuestionService {
	return &questionServiceImpl{questions: questions, txm: txm}
}

// ListByLevel returns the question views at the given level.
func (s *questionServiceImpl) ListByLevel(ctx context.Context, level int) ([]dto.QuestionResponse, error) {
	var resp []dto.QuestionResponse
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		questions, err := s.questions.ListByLevel(ctx, level)
		if err != nil {
			return domain.NewInternalError("failed to list questions", err)
		}
		resp = make([]dto.QuestionResponse, 0, len(questions))
		for _, question := range questions {
			resp = append(resp, questionResponse(question))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns a single question view.
func (s *questionServiceImpl) Get(ctx context.Context, questionID string) (*dto.QuestionResponse, error) {
	var resp *dto.QuestionResponse
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		question, err := s.questions.Get(ctx, questionID)
		if err != nil {
			return domain.NewInternalError("failed to look up question", err)
		}
		if question == nil {
			return domain.NewNotFoundError("Question not found")
		}
		view := questionResponse(question)
		resp = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// questionResponse is the public view of a question; the expected
// answer is deliberately omitted.
func questionResponse(question *domain.QuestionRecord) dto.QuestionResponse {
	choices := make([]string, len(question.Choices))
	copy(choices, question.Choices)
	return dto.QuestionResponse{
		ID:      question.ID,
		Level:   question.Level,
		Prompt:  question.Prompt,
		Choices: choices,
	}
}
