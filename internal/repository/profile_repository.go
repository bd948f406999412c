package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryProfileRepository implements domain.ProfileRepository against
// the shared MemoryStore.
type memoryProfileRepository struct {
	store *MemoryStore
}

// NewMemoryProfileRepository creates a profile repository bound to the
// given store.
func NewMemoryProfileRepository(store *MemoryStore) domain.ProfileRepository {
	return &memoryProfileRepository{store: store}
}

// Get returns the profile for the user id, or (nil, nil) when none
// exists.
func (r *memoryProfileRepository) Get(ctx context.Context, userID string) (*domain.PlayerProfile, error) {
	profile, ok := r.store.profiles[userID]
	if !ok {
		return nil, nil
	}
	return profile, nil
}

// GetByEmail resolves the email through the reverse index, or returns
// (nil, nil) when no profile is associated with it.
func (r *memoryProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.PlayerProfile, error) {
	userID, ok := r.store.emailIndex[email]
	if !ok {
		return nil, nil
	}
	return r.Get(ctx, userID)
}

// Save inserts or replaces the profile and keeps the email reverse
// index current.
func (r *memoryProfileRepository) Save(ctx context.Context, profile *domain.PlayerProfile) error {
	r.store.profiles[profile.ID] = profile
	if profile.Email != "" {
		r.store.emailIndex[profile.Email] = profile.ID
	}
	return nil
}
