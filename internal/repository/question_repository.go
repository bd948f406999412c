package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryQuestionRepository implements domain.QuestionRepository against
// the shared MemoryStore.
type memoryQuestionRepository struct {
	store *MemoryStore
}

// NewMemoryQuestionRepository creates a question repository bound to
// the given store.
func NewMemoryQuestionRepository(store *MemoryStore) domain.QuestionRepository {
	return &memoryQuestionRepository{store: store}
}

// Get returns the question for the id, or (nil, nil) when none exists.
func (r *memoryQuestionRepository) Get(ctx context.Context, questionID string) (*domain.QuestionRecord, error) {
	question, ok := r.store.questions[questionID]
	if !ok {
		return nil, nil
	}
	return question, nil
}

// ListByLevel returns every question at the given level.
func (r *memoryQuestionRepository) ListByLevel(ctx context.Context, level int) ([]*domain.QuestionRecord, error) {
	ids := r.store.questionsByLevel[level]
	questions := make([]*domain.QuestionRecord, 0, len(ids))
	for _, id := range ids {
		questions = append(questions, r.store.questions[id])
	}
	return questions, nil
}

// Save inserts or replaces the question and maintains the per-level
// index.
func (r *memoryQuestionRepository) Save(ctx context.Context, question *domain.QuestionRecord) error {
	if _, exists := r.store.questions[question.ID]; !exists {
		r.store.questionsByLevel[question.Level] = append(r.store.questionsByLevel[question.Level], question.ID)
	}
	r.store.questions[question.ID] = question
	return nil
}
