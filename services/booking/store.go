package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// sessionTTL is how long an idle wizard session survives in the cache.
const sessionTTL = 30 * time.Minute

// SessionStore persists wizard state between requests.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, state State) error
	Load(ctx context.Context, sessionID string) (State, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps serialized wizard sessions in Redis with a
// sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore wraps a Redis client as a session store.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(id string) string {
	return "booking:session:" + id
}

// Save serializes the wizard state and refreshes the session TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(sessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Load retrieves and deserializes a wizard session. Missing or expired
// sessions yield ErrSessionNotFound.
func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (State, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return State{}, ErrSessionNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load booking session: %w", err)
	}
	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return State{}, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return state, nil
}

// Delete discards a session. Abandoning a session before finalize requires
// no compensation: nothing was persisted.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKey(sessionID)).Err()
}
