package types

import (
	"context"
	"time"
)

// Cache is the minimal cache surface the service depends on.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	Del(ctx context.Context, key string) error
}
