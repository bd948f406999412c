package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathrush/internal/domain"
)

func TestProfileRepository_NotFoundIsNilNil(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryProfileRepository(store)
	ctx := context.Background()

	profile, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = repo.GetByEmail(ctx, "missing@x.com")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileRepository_ReferenceSemantics(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryProfileRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.PlayerProfile{ID: "u1", Email: "a@x.com"}))

	fetched, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	fetched.XP = 120

	again, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 120, again.XP, "mutation on a fetched profile must be visible to later fetches")

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Same(t, again, byEmail)
}

func TestQuestionRepository_LevelIndex(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryQuestionRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.QuestionRecord{ID: "q1", Level: 1, Answer: "2"}))
	require.NoError(t, repo.Save(ctx, &domain.QuestionRecord{ID: "q2", Level: 1, Answer: "3"}))
	require.NoError(t, repo.Save(ctx, &domain.QuestionRecord{ID: "q3", Level: 2, Answer: "6"}))

	level1, err := repo.ListByLevel(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, level1, 2)

	empty, err := repo.ListByLevel(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Re-saving an existing id must not duplicate the index entry.
	require.NoError(t, repo.Save(ctx, &domain.QuestionRecord{ID: "q1", Level: 1, Answer: "2"}))
	level1, err = repo.ListByLevel(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, level1, 2)
}

func TestRankingRepository_Upsert(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryRankingRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.RankingEntry{UserID: "u1", XP: 10}))
	require.NoError(t, repo.Save(ctx, &domain.RankingEntry{UserID: "u1", XP: 50}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 50, entries[0].XP)
}

func TestMemoryTokenStore(t *testing.T) {
	tokens := NewMemoryTokenStore()
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, "tok1", "a@x.com"))
	email, err := tokens.Resolve(ctx, "tok1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	require.NoError(t, tokens.Delete(ctx, "tok1"))
	_, err = tokens.Resolve(ctx, "tok1")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	require.NoError(t, tokens.Delete(ctx, "never-existed"))
	require.NoError(t, tokens.SetResetToken(ctx, "a@x.com", "reset1"))
}

func TestTransactionManager_SerializesWrites(t *testing.T) {
	store := NewMemoryStore()
	txm := NewMemoryTransactionManager(store)
	repo := NewMemoryProfileRepository(store)
	ctx := context.Background()

	err := txm.WithTransaction(ctx, func(ctx context.Context) error {
		return repo.Save(ctx, &domain.PlayerProfile{ID: "u1"})
	})
	require.NoError(t, err)

	const workers = 16
	const increments = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				_ = txm.WithTransaction(ctx, func(ctx context.Context) error {
					profile, err := repo.Get(ctx, "u1")
					if err != nil {
						return err
					}
					profile.XP++
					return nil
				})
			}
		}()
	}
	wg.Wait()

	profile, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, workers*increments, profile.XP)
}
