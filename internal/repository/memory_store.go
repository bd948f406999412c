package repository

import (
	"sync"

	"mathrush/internal/domain"
)

// MemoryStore is the shared in-memory state container: credentials,
// profiles, questions, game sessions, ranking entries and log
// payloads, each in an identity-keyed map. Maps hold pointers,
// so a mutation on a fetched entity is visible to subsequent fetches
// within the same transaction.
//
// The store is not self-locking. All access must be serialized through
// the TransactionManager returned by NewMemoryTransactionManager, which
// owns the store mutex; the repositories in this package assume their
// caller holds it.
type MemoryStore struct {
	mu sync.RWMutex

	users            map[string]*domain.UserCredential // keyed by email
	profiles         map[string]*domain.PlayerProfile  // keyed by user id
	emailIndex       map[string]string                 // email -> user id
	questions        map[string]*domain.QuestionRecord
	questionsByLevel map[int][]string
	sessions         map[string]*domain.GameSessionRecord
	ranking          map[string]*domain.RankingEntry
	errorLogs        []*domain.ErrorLog
	gameSessionLogs  []*domain.GameSessionLog
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:            make(map[string]*domain.UserCredential),
		profiles:         make(map[string]*domain.PlayerProfile),
		emailIndex:       make(map[string]string),
		questions:        make(map[string]*domain.QuestionRecord),
		questionsByLevel: make(map[int][]string),
		sessions:         make(map[string]*domain.GameSessionRecord),
		ranking:          make(map[string]*domain.RankingEntry),
	}
}
