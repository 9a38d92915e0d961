package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"letify_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const redisScanBatch = 200

// RedisStore keeps each record as a plain string key.
type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects and pings the server.
func OpenRedis(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("kvstore: redis ping %s: %w", addr, err)
	}
	return NewRedisStore(client), nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	logger.StoreLog("redis", "get", key, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(val), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	start := time.Now()
	err := s.client.Set(ctx, key, []byte(value), 0).Err()
	logger.StoreLog("redis", "set", key, time.Since(start), err)
	return err
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.client.Del(ctx, key).Err()
	logger.StoreLog("redis", "delete", key, time.Since(start), err)
	return err
}

// ScanPrefix walks SCAN MATCH <prefix>* and fetches values with MGET.
// Keys deleted between the two calls are skipped.
func (s *RedisStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	start := time.Now()
	pattern := escapeGlob(prefix) + "*"

	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, redisScanBatch).Result()
		if err != nil {
			logger.StoreLog("redis", "scan", prefix, time.Since(start), err)
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	entries := make([]Entry, 0, len(keys))
	if len(keys) == 0 {
		return entries, nil
	}

	// SCAN may return a key more than once.
	sort.Strings(keys)
	keys = dedupeSorted(keys)

	values, err := s.client.MGet(ctx, keys...).Result()
	logger.StoreLog("redis", "scan", prefix, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: keys[i], Value: json.RawMessage(str)})
	}
	return entries, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

func dedupeSorted(keys []string) []string {
	out := keys[:0]
	for i, k := range keys {
		if i == 0 || k != keys[i-1] {
			out = append(out, k)
		}
	}
	return out
}
