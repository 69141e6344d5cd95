package ratelimit

import "context"

// Store counts hits per key inside fixed windows.
type Store interface {
	// Allow records one hit for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}
