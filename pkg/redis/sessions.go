package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/apperr"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/auth"
)

const sessionTTL = 24 * time.Hour

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// CreateSession stores the session state against its token with a TTL.
func CreateSession(ctx context.Context, token string, session *auth.Session) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := client.Set(ctx, sessionKey(token), payload, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession resolves a bearer token to its session state. A miss means
// the token is unknown or expired.
func GetSession(ctx context.Context, token string) (*auth.Session, error) {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("session not found")
		}
		return nil, apperr.Store("failed to fetch session", err)
	}

	var session auth.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession invalidates a token on logout.
func DeleteSession(ctx context.Context, token string) error {
	client := RedisClient()
	defer client.Close()

	return client.Del(ctx, sessionKey(token)).Err()
}
