package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenChecker resolves the user behind the session token carried in the
// request context. Anonymous requests resolve to an empty user id, expired
// or unknown tokens do too, so callers never treat those as errors.
type TokenChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewTokenChecker(ttl time.Duration, redisClient *redis.Client) *TokenChecker {
	return &TokenChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (tc *TokenChecker) CurrentUser(ctx context.Context) (string, error) {
	token := TokenFromContext(ctx)
	if token == "" {
		return "", nil
	}

	cmd := tc.redisClient.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(cmd.Err(), redis.Nil) {
		return "", nil
	}
	if err := cmd.Err(); err != nil {
		return "", err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	if time.Since(createdAt) > tc.ttl {
		return "", nil
	}

	return userID, nil
}
