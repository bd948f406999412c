package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryLogRepository implements domain.LogRepository against the
// shared MemoryStore.
type memoryLogRepository struct {
	store *MemoryStore
}

// NewMemoryLogRepository creates a log repository bound to the given
// store.
func NewMemoryLogRepository(store *MemoryStore) domain.LogRepository {
	return &memoryLogRepository{store: store}
}

// AddErrorLog appends a client error report.
func (r *memoryLogRepository) AddErrorLog(ctx context.Context, entry *domain.ErrorLog) error {
	r.store.errorLogs = append(r.store.errorLogs, entry)
	return nil
}

// AddGameSessionLog appends a client game-session payload.
func (r *memoryLogRepository) AddGameSessionLog(ctx context.Context, entry *domain.GameSessionLog) error {
	r.store.gameSessionLogs = append(r.store.gameSessionLogs, entry)
	return nil
}
