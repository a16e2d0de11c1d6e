// File: services/intelligence/decisionStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"hudumahub/models"

	"github.com/go-redis/redis/v8"
)

const decisionPrefix = "ai:decision:"

// RedisDecisionStore caches oracle verdicts keyed by booking ID.
type RedisDecisionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDecisionStore(client *redis.Client, ttl time.Duration) *RedisDecisionStore {
	return &RedisDecisionStore{client: client, ttl: ttl}
}

func (s *RedisDecisionStore) Get(ctx context.Context, bookingID string) (*models.BookingDecision, error) {
	key := decisionPrefix + bookingID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var decision models.BookingDecision
	if err := json.Unmarshal([]byte(data), &decision); err != nil {
		return nil, err
	}
	return &decision, nil
}

func (s *RedisDecisionStore) Set(ctx context.Context, bookingID string, decision *models.BookingDecision) error {
	key := decisionPrefix + bookingID
	b, err := json.Marshal(decision)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}
