// File: services/session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"staycalc/models"

	"github.com/go-redis/redis/v8"
)

const bookingSessionPrefix = "booking:session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps records for ttl after their last write; 0 keeps them forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.BookingFields, error) {
	key := bookingSessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.BookingFields{}, nil
	}
	if err != nil {
		return nil, err
	}
	var fields models.BookingFields
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, err
	}
	return &fields, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, fields *models.BookingFields) error {
	key := bookingSessionPrefix + sessionID
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	key := bookingSessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// SessionIDs walks the keyspace with SCAN and returns every stored session id.
func (s *RedisStore) SessionIDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, bookingSessionPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), bookingSessionPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
