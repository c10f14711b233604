package ports

import (
	"context"
	"time"
)

// Cache fronts the public content reads. A miss is reported as
// (found=false, nil error) so callers fall through to the repository.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
