package domain

import "context"

// TokenError represents an error originating from the token store.
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

// ErrTokenNotFound is returned when a session token is unknown or revoked.
const ErrTokenNotFound = TokenError("token: not found")

// UserCredentialRepository persists authentication credentials keyed by
// email. Lookups return (nil, nil) when no credential exists.
type UserCredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*UserCredential, error)
	Save(ctx context.Context, email string, cred *UserCredential) error
}

// ProfileRepository persists player profiles keyed by user id, with an
// email reverse index maintained on save. Lookups return (nil, nil)
// when no profile exists.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*PlayerProfile, error)
	GetByEmail(ctx context.Context, email string) (*PlayerProfile, error)
	Save(ctx context.Context, profile *PlayerProfile) error
}

// QuestionRepository holds the read-only question bank.
type QuestionRepository interface {
	Get(ctx context.Context, questionID string) (*QuestionRecord, error)
	ListByLevel(ctx context.Context, level int) ([]*QuestionRecord, error)
	Save(ctx context.Context, question *QuestionRecord) error
}

// GameSessionRepository persists game sessions keyed by session id.
type GameSessionRepository interface {
	Get(ctx context.Context, sessionID string) (*GameSessionRecord, error)
	Save(ctx context.Context, session *GameSessionRecord) error
}

// RankingRepository persists leaderboard entries, one per user id.
type RankingRepository interface {
	Get(ctx context.Context, userID string) (*RankingEntry, error)
	List(ctx context.Context) ([]*RankingEntry, error)
	Save(ctx context.Context, entry *RankingEntry) error
}

// TokenStore maps opaque session tokens to the owning email, and keeps
// password-reset tokens. Resolve returns ErrTokenNotFound for unknown
// tokens.
type TokenStore interface {
	Save(ctx context.Context, token, email string) error
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	SetResetToken(ctx context.Context, email, token string) error
}

// LogRepository records fire-and-forget client log payloads.
type LogRepository interface {
	AddErrorLog(ctx context.Context, entry *ErrorLog) error
	AddGameSessionLog(ctx context.Context, entry *GameSessionLog) error
}

// TransactionManager serializes engine operations against the shared
// store. Every read-modify-write sequence runs inside WithTransaction
// so that multi-entity updates (such as a game finish touching both the
// profile and the ranking) are observed atomically; read-only
// operations may use WithReadTransaction and run concurrently.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
