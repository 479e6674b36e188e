package prefs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/golingo"
)

// DefaultRedisKeyPrefix prefixes all preference keys in Redis.
const DefaultRedisKeyPrefix = "golingo:pref:"

// RedisStore persists preferences in Redis. Only the active preference per
// scope is kept: saving overwrites the previous one, which collapses the
// deactivate-then-insert sequence into a single SET per scope.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration for the preference store.
type RedisConfig struct {
	URL       string
	KeyPrefix string
}

// NewRedisStore creates a Redis-backed preference store and verifies the
// connection.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &golingo.StorageError{Op: "connect", Message: "invalid redis URL", Cause: err}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &golingo.StorageError{Op: "connect", Message: "redis ping failed", Cause: err}
	}

	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient wraps an existing Redis client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (r *RedisStore) userKey(userID string) string {
	return r.keyPrefix + "user:" + userID
}

func (r *RedisStore) sessionKey(sessionID string) string {
	return r.keyPrefix + "session:" + sessionID
}

// Active returns the subject's active preference, preferring the user scope.
func (r *RedisStore) Active(ctx context.Context, sub Subject) (*Preference, bool, error) {
	if sub.UserID != "" {
		pref, ok, err := r.get(ctx, r.userKey(sub.UserID))
		if err != nil || ok {
			return pref, ok, err
		}
	}
	if sub.SessionID != "" {
		return r.get(ctx, r.sessionKey(sub.SessionID))
	}
	return nil, false, nil
}

func (r *RedisStore) get(ctx context.Context, key string) (*Preference, bool, error) {
	raw, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "redis get failed", Cause: err}
	}

	var pref Preference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "corrupt preference entry", Cause: err}
	}
	return &pref, true, nil
}

// Save stores the preference under each scope it names, replacing the
// previous active preference for that scope.
func (r *RedisStore) Save(ctx context.Context, pref *Preference) error {
	raw, err := json.Marshal(pref)
	if err != nil {
		return &golingo.StorageError{Op: "put", Message: "marshal preference failed", Cause: err}
	}

	if pref.UserID != "" {
		if err := r.client.Set(ctx, r.userKey(pref.UserID), raw, 0).Err(); err != nil {
			return &golingo.StorageError{Op: "put", Message: "redis set failed", Cause: err}
		}
	}
	if pref.SessionID != "" {
		if err := r.client.Set(ctx, r.sessionKey(pref.SessionID), raw, 0).Err(); err != nil {
			return &golingo.StorageError{Op: "put", Message: "redis set failed", Cause: err}
		}
	}
	return nil
}

// Close closes the underlying Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ Store = (*RedisStore)(nil)
