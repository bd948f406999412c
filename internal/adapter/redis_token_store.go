package adapter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"mathrush/internal/domain"
)

const (
	sessionKeyPrefix = "session:"
	resetKeyPrefix   = "reset:"
)

// RedisTokenStore implements the domain.TokenStore interface using a
// Redis client, so session tokens survive process restarts and can be
// shared by several instances. A zero ttl stores tokens without
// expiration.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore creates a new instance of RedisTokenStore. It
// expects a connected *redis.Client.
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) domain.TokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

// Save associates the session token with the owning email.
func (r *RedisTokenStore) Save(ctx context.Context, token, email string) error {
	return r.client.Set(ctx, sessionKeyPrefix+token, email, r.ttl).Err()
}

// Resolve returns the email owning the token. It translates redis.Nil
// to domain.ErrTokenNotFound.
func (r *RedisTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	email, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrTokenNotFound
		}
		return "", err
	}
	return email, nil
}

// Delete revokes the token. Deleting an unknown token is not an error.
func (r *RedisTokenStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// SetResetToken stores the latest password-reset token for the email.
func (r *RedisTokenStore) SetResetToken(ctx context.Context, email, token string) error {
	return r.client.Set(ctx, resetKeyPrefix+email, token, r.ttl).Err()
}
