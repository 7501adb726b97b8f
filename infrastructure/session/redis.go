package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func sessionKey(idCard string) string {
	return "session:" + idCard
}

func (s *redisStore) Open(ctx context.Context, idCard string, loginTime time.Time) error {
	return s.client.Set(ctx, sessionKey(idCard), loginTime.UTC().Format(time.RFC3339Nano), 0).Err()
}

func (s *redisStore) Lookup(ctx context.Context, idCard string) (time.Time, error) {
	raw, err := s.client.Get(ctx, sessionKey(idCard)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, ErrNoSession
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func (s *redisStore) Close(ctx context.Context, idCard string) error {
	deleted, err := s.client.Del(ctx, sessionKey(idCard)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNoSession
	}
	return nil
}
