package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ResultCache holds representations of completed assessments. Completed
// results never change, so entries only expire or get deleted with the
// assessment.
type ResultCache interface {
	Get(ctx context.Context, id string) (*AssessmentView, bool, error)
	Set(ctx context.Context, view *AssessmentView) error
	Delete(ctx context.Context, id string) error
}

const resultKeyPrefix = "assessment:result:"

type RedisResultCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisResultCache(rdb *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{Redis: rdb, TTL: ttl}
}

func resultKey(id string) string {
	return resultKeyPrefix + id
}

func (c *RedisResultCache) Get(ctx context.Context, id string) (*AssessmentView, bool, error) {
	data, err := c.Redis.Get(ctx, resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var v AssessmentView
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, view *AssessmentView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, resultKey(view.ID), data, c.TTL).Err()
}

func (c *RedisResultCache) Delete(ctx context.Context, id string) error {
	return c.Redis.Del(ctx, resultKey(id)).Err()
}

// NopResultCache is used when redis is disabled.
type NopResultCache struct{}

func (NopResultCache) Get(context.Context, string) (*AssessmentView, bool, error) {
	return nil, false, nil
}

func (NopResultCache) Set(context.Context, *AssessmentView) error { return nil }

func (NopResultCache) Delete(context.Context, string) error { return nil }
