package repository

import (
	"context"

	"mathrush/internal/domain"
)

// memoryTransactionManager implements domain.TransactionManager over
// the store mutex. A write transaction takes the exclusive lock, so two
// operations touching the same entity cannot interleave their
// read-modify-write sequences and a multi-entity update (profile plus
// ranking on game finish) is observed atomically. Read transactions
// share the lock.
type memoryTransactionManager struct {
	store *MemoryStore
}

// NewMemoryTransactionManager creates a transaction manager bound to
// the given store.
func NewMemoryTransactionManager(store *MemoryStore) domain.TransactionManager {
	return &memoryTransactionManager{store: store}
}

// WithTransaction runs fn while holding the store's exclusive lock.
func (m *memoryTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

// WithReadTransaction runs fn while holding the store's shared lock.
func (m *memoryTransactionManager) WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return fn(ctx)
}
