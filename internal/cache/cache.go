// Package cache keeps recent analysis results in Redis so repeated lookups
// of the same match, player and role skip re-analysis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pable/go-lol-coach/internal/model"
)

// ErrMiss is returned when no result is cached for a key.
var ErrMiss = errors.New("cache miss")

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 24 * time.Hour

// Cache stores analysis results as JSON values with a TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps an existing client.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Dial connects to the Redis server at url (redis://host:port/db) and
// checks it is reachable.
func Dial(ctx context.Context, url string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, ttl), nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Key builds the cache key of one analysis. The match hash and the
// thresholds fingerprint are part of the key so neither a re-fetched payload
// nor retuned thresholds read a stale result.
func Key(matchHash, puuid string, role model.Role, thresholds string) string {
	return fmt.Sprintf("lolcoach:analysis:%s:%s:%s:%s", matchHash, puuid, role, thresholds)
}

// Get returns the cached result for key or ErrMiss.
func (c *Cache) Get(ctx context.Context, key string) (*model.AnalysisResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	var res model.AnalysisResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("unmarshaling result: %w", err)
	}
	return &res, nil
}

// Put stores res under key with the cache TTL.
func (c *Cache) Put(ctx context.Context, key string, res *model.AnalysisResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
