package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryGameSessionRepository implements domain.GameSessionRepository
// against the shared MemoryStore.
type memoryGameSessionRepository struct {
	store *MemoryStore
}

// NewMemoryGameSessionRepository creates a session repository bound to
// the given store.
func NewMemoryGameSessionRepository(store *MemoryStore) domain.GameSessionRepository {
	return &memoryGameSessionRepository{store: store}
}

// Get returns the session for the id, or (nil, nil) when none exists.
func (r *memoryGameSessionRepository) Get(ctx context.Context, sessionID string) (*domain.GameSessionRecord, error) {
	session, ok := r.store.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return session, nil
}

// Save inserts or replaces the session.
func (r *memoryGameSessionRepository) Save(ctx context.Context, session *domain.GameSessionRecord) error {
	r.store.sessions[session.ID] = session
	return nil
}
