package scheduler

import "context"

// CacheInvalidator descarta os resultados analíticos em cache
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}
