package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Compile-time interface check
var _ Store = (*RedisStore)(nil)

const redisHistoryKey = "sharepad:history"

// RedisStore keeps the history in a Redis list, newest first. LPUSH+LTRIM in
// one pipeline keeps the list bounded without a read-modify-write race.
type RedisStore struct {
	client   *redis.Client
	capacity int
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(options *redis.Options, capacity int) (*RedisStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, capacity: capacity}, nil
}

func (s *RedisStore) Add(ctx context.Context, entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode share: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, redisHistoryKey, data)
	pipe.LTrim(ctx, redisHistoryKey, 0, int64(s.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append share: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.LRange(ctx, redisHistoryKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("failed to decode share: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *RedisStore) Search(ctx context.Context, filter Filter) ([]Entry, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, redisHistoryKey).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
