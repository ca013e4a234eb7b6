package contract

import (
	"context"
	"time"
)

// Locker guards scheduled firings when more than one replica is running.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
