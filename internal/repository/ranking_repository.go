package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryRankingRepository implements domain.RankingRepository against
// the shared MemoryStore.
type memoryRankingRepository struct {
	store *MemoryStore
}

// NewMemoryRankingRepository creates a ranking repository bound to the
// given store.
func NewMemoryRankingRepository(store *MemoryStore) domain.RankingRepository {
	return &memoryRankingRepository{store: store}
}

// Get returns the entry for the user id, or (nil, nil) when none
// exists.
func (r *memoryRankingRepository) Get(ctx context.Context, userID string) (*domain.RankingEntry, error) {
	entry, ok := r.store.ranking[userID]
	if !ok {
		return nil, nil
	}
	return entry, nil
}

// List returns every ranking entry in unspecified order.
func (r *memoryRankingRepository) List(ctx context.Context) ([]*domain.RankingEntry, error) {
	entries := make([]*domain.RankingEntry, 0, len(r.store.ranking))
	for _, entry := range r.store.ranking {
		entries = append(entries, entry)
	}
	return entries, nil
}

// Save inserts or replaces the single entry for the user id.
func (r *memoryRankingRepository) Save(ctx context.Context, entry *domain.RankingEntry) error {
	r.store.ranking[entry.UserID] = entry
	return nil
}
