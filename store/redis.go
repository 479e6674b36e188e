package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/golingo"
)

// RedisStore is a Redis-backed translation cache store. Each entry is a
// hash at <prefix><key>; usage counts are incremented server-side with
// HINCRBY, so concurrent hits never lose increments. Later Puts for the
// same key replace earlier ones, which keeps the newest entry
// authoritative.
//
// Expiry is logical: the expires_at field is checked on every read.
// PEXPIREAT is also set as store-level housekeeping so dead entries do not
// accumulate.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "golingo:")
}

// NewRedisStore creates a new Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &golingo.StorageError{Op: "connect", Message: "invalid redis URL", Cause: err}
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &golingo.StorageError{Op: "connect", Message: "redis ping failed", Cause: err}
	}

	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing Redis client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "golingo:"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a live entry and increments its usage count.
func (s *RedisStore) Get(ctx context.Context, key, sourceLang, targetLang string) (*golingo.CacheEntry, bool, error) {
	fullKey := s.keyPrefix + key

	fields, err := s.client.HGetAll(ctx, fullKey).Result()
	if err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "reading entry", Cause: err}
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	entry, err := entryFromFields(key, fields)
	if err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "corrupt entry", Cause: err}
	}

	if entry.SourceLang != sourceLang || entry.TargetLang != targetLang {
		return nil, false, nil
	}
	if !entry.Live(time.Now().UTC()) {
		return nil, false, nil
	}

	usage, err := s.client.HIncrBy(ctx, fullKey, "usage", 1).Result()
	if err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "incrementing usage", Cause: err}
	}
	entry.UsageCount = usage

	return entry, true, nil
}

// Put stores the entry, replacing any earlier entry for the same key.
func (s *RedisStore) Put(ctx context.Context, entry *golingo.CacheEntry) error {
	fullKey := s.keyPrefix + entry.Key

	err := s.client.HSet(ctx, fullKey,
		"content", entry.Content,
		"translated", entry.Translated,
		"source", entry.SourceLang,
		"target", entry.TargetLang,
		"backend", entry.Backend,
		"confidence", strconv.FormatFloat(entry.Confidence, 'f', -1, 64),
		"created_at", entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		"expires_at", entry.ExpiresAt.UTC().Format(time.RFC3339Nano),
		"usage", strconv.FormatInt(entry.UsageCount, 10),
	).Err()
	if err != nil {
		return &golingo.StorageError{Op: "put", Message: "writing entry", Cause: err}
	}

	if err := s.client.PExpireAt(ctx, fullKey, entry.ExpiresAt).Err(); err != nil {
		return &golingo.StorageError{Op: "put", Message: "setting expiry", Cause: err}
	}

	return nil
}

// entryFromFields rebuilds a cache entry from its Redis hash fields.
func entryFromFields(key string, fields map[string]string) (*golingo.CacheEntry, error) {
	confidence, err := strconv.ParseFloat(fields["confidence"], 64)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, err
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return nil, err
	}
	usage, err := strconv.ParseInt(fields["usage"], 10, 64)
	if err != nil {
		return nil, err
	}

	return &golingo.CacheEntry{
		Key:        key,
		SourceLang: fields["source"],
		TargetLang: fields["target"],
		Content:    fields["content"],
		Translated: fields["translated"],
		Backend:    fields["backend"],
		Confidence: confidence,
		CreatedAt:  createdAt,
		ExpiresAt:  expiresAt,
		UsageCount: usage,
	}, nil
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Verify RedisStore implements Store
var _ Store = (*RedisStore)(nil)
