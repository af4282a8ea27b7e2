package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/logger"
)

const defaultKeyPrefix = "smartquit:session:"

// changeChannel carries the names of mutated keys between processes.
const changeChannel = "smartquit:session:changes"

// RedisStore keeps session state in Redis so several console processes share
// one session. Every mutation is published on a change channel; Watch
// subscribes to it, which is how a token rotated by one process becomes
// visible to the others without a restart.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	logger logger.Logger
}

func NewRedisStore(client redis.UniversalClient, log logger.Logger) *RedisStore {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
		logger: log,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	s.publish(ctx, key)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}

	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	for _, key := range keys {
		s.publish(ctx, key)
	}
	return nil
}

// Watch subscribes to the change channel and forwards key names to fn from a
// background goroutine. The returned func closes the subscription and stops
// the goroutine.
func (s *RedisStore) Watch(fn func(key string)) (unsubscribe func()) {
	sub := s.client.Subscribe(context.Background(), changeChannel)

	go func() {
		for msg := range sub.Channel() {
			fn(msg.Payload)
		}
	}()

	return func() {
		if err := sub.Close(); err != nil {
			s.logger.Warn("Failed to close session change subscription", "error", err)
		}
	}
}

// publish best-effort notifies other processes. A failed publish must not fail
// the mutation itself: local state is already correct.
func (s *RedisStore) publish(ctx context.Context, key string) {
	if err := s.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		s.logger.Warn("Failed to publish session change", "key", key, "error", err)
	}
}
