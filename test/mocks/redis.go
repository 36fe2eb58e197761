package mocks

import (
	"context"
	"time"

	redisClient "github.com/greenmiles/greenroute/pkg/redis"
	"github.com/stretchr/testify/mock"
)

// MockRedisClient is a mock implementation of the Redis client
type MockRedisClient struct {
	mock.Mock
}

// Ensure MockRedisClient implements ClientInterface
var _ redisClient.ClientInterface = (*MockRedisClient)(nil)

// SetWithExpiration mocks setting a key with expiration
func (m *MockRedisClient) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

// GetString mocks getting a string value
func (m *MockRedisClient) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// Delete mocks deleting keys
func (m *MockRedisClient) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// Exists mocks checking if a key exists
func (m *MockRedisClient) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Close mocks closing the client
func (m *MockRedisClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

// ZIncrBy mocks incrementing a sorted set member's score
func (m *MockRedisClient) ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error) {
	args := m.Called(ctx, key, increment, member)
	return args.Get(0).(float64), args.Error(1)
}

// ZRevRangeWithScores mocks reading a sorted set in descending score order
func (m *MockRedisClient) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redisClient.RankedMember, error) {
	args := m.Called(ctx, key, start, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]redisClient.RankedMember), args.Error(1)
}

// ZScore mocks reading a sorted set member's score
func (m *MockRedisClient) ZScore(ctx context.Context, key, member string) (float64, error) {
	args := m.Called(ctx, key, member)
	return args.Get(0).(float64), args.Error(1)
}

// Expire mocks setting expiration on a key
func (m *MockRedisClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}
