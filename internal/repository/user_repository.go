package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryUserRepository implements domain.UserCredentialRepository
// against the shared MemoryStore.
type memoryUserRepository struct {
	store *MemoryStore
}

// NewMemoryUserRepository creates a credential repository bound to the
// given store.
func NewMemoryUserRepository(store *MemoryStore) domain.UserCredentialRepository {
	return &memoryUserRepository{store: store}
}

// GetByEmail returns the credential for the email, or (nil, nil) when
// none exists.
func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserCredential, error) {
	cred, ok := r.store.users[email]
	if !ok {
		return nil, nil
	}
	return cred, nil
}

// Save inserts or replaces the credential for the email.
func (r *memoryUserRepository) Save(ctx context.Context, email string, cred *domain.UserCredential) error {
	r.store.users[email] = cred
	return nil
}
