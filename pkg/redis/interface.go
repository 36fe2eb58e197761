package redis

import (
	"context"
	"time"
)

// RankedMember is a sorted set member with its score.
type RankedMember struct {
	Member string
	Score  float64
}

// ClientInterface defines the interface for Redis operations
type ClientInterface interface {
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error

	// Sorted set operations (leaderboards)
	ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error)
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]RankedMember, error)
	ZScore(ctx context.Context, key, member string) (float64, error)

	// Expiration
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)
