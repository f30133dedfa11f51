package providers

import (
	"context"
)

// CacheProvider defines the interface for cache operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error
	Delete(ctx context.Context, key string) error
}
