package repository

import (
	"context"
	"sync"

	"mathrush/internal/domain"
)

// memoryTokenStore implements domain.TokenStore with its own maps and
// lock. Token operations are single-key and independent of the engine
// consistency contract, so they do not go through the transaction
// manager; the Redis adapter in internal/adapter replaces this backend
// when Redis is configured.
type memoryTokenStore struct {
	mu            sync.RWMutex
	sessionTokens map[string]string // token -> email
	resetTokens   map[string]string // email -> token
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() domain.TokenStore {
	return &memoryTokenStore{
		sessionTokens: make(map[string]string),
		resetTokens:   make(map[string]string),
	}
}

// Save associates the session token with the owning email.
func (r *memoryTokenStore) Save(ctx context.Context, token, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessionTokens[token] = email
	return nil
}

// Resolve returns the email owning the token, or ErrTokenNotFound.
func (r *memoryTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email, ok := r.sessionTokens[token]
	if !ok {
		return "", domain.ErrTokenNotFound
	}
	return email, nil
}

// Delete revokes the token. Deleting an unknown token is not an error.
func (r *memoryTokenStore) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessionTokens, token)
	return nil
}

// SetResetToken stores the latest password-reset token for the email.
func (r *memoryTokenStore) SetResetToken(ctx context.Context, email, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetTokens[email] = token
	return nil
}
