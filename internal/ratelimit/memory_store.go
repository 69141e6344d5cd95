package ratelimit

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	return &MemoryStore{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (m *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > m.window {
		b = &bucket{start: now}
		m.buckets[key] = b
		m.sweep(now)
	}

	if b.count >= m.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops expired buckets so idle clients do not accumulate. Caller holds mu.
func (m *MemoryStore) sweep(now time.Time) {
	for key, b := range m.buckets {
		if now.Sub(b.start) > m.window {
			delete(m.buckets, key)
		}
	}
}
