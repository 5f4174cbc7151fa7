package redis

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const operationTimeout = 2 * time.Second

// LimiterStorage keeps rate limiter counters in Redis under a key prefix so
// every API instance shares the same windows.
type LimiterStorage struct {
	client *Client
	prefix string
}

var _ fiber.Storage = (*LimiterStorage)(nil)

func NewLimiterStorage(client *Client, prefix string) *LimiterStorage {
	return &LimiterStorage{client: client, prefix: prefix}
}

func (s *LimiterStorage) key(k string) string {
	return s.prefix + k
}

func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()
	return s.client.GetBytes(ctx, s.key(key))
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key(key), val, exp)
}

func (s *LimiterStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(key))
}

// Reset removes only this storage's keys.
func (s *LimiterStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := s.client.ScanAndDelete(ctx, s.prefix+"*")
	return err
}

// Close is a no-op; the shared client is closed by the container.
func (s *LimiterStorage) Close() error {
	return nil
}
