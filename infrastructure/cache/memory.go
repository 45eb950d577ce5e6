package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const memoryBackend = "memory"

type entry struct {
	data      []byte
	expiresAt time.Time
	tags      []string
}

func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// MemoryStore is the in-process cache backend: a mutex-guarded entry map
// plus a tag-to-keyset index, so tag invalidation costs only the tag's
// fanout. The entry map and the tag index mutate under one mutex and are
// never mutually stale.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*entry
	tagIndex   map[string]map[string]struct{}
	defaultTTL time.Duration

	sweepStop chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// NewMemoryStore creates an empty store. defaultTTL applies when Set is
// called with a non-positive TTL.
func NewMemoryStore(defaultTTL time.Duration, logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &MemoryStore{
		entries:    make(map[string]*entry),
		tagIndex:   make(map[string]map[string]struct{}),
		defaultTTL: defaultTTL,
		sweepStop:  make(chan struct{}),
		logger:     logger,
	}
}

// Get returns the cached payload. Expired entries are misses and are
// removed on read; correctness never depends on the sweep.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		Misses.WithLabelValues(memoryBackend).Inc()
		return nil, false
	}
	if e.expired(time.Now()) {
		s.removeLocked(key, e)
		Misses.WithLabelValues(memoryBackend).Inc()
		return nil, false
	}

	Hits.WithLabelValues(memoryBackend).Inc()
	data := make([]byte, len(e.data))
	copy(data, e.data)
	return data, true
}

// Has reports presence with the same expiry semantics as Get, without
// copying the payload.
func (s *MemoryStore) Has(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if e.expired(time.Now()) {
		s.removeLocked(key, e)
		return false
	}
	return true
}

// Set stores the payload with expiry now+ttl and registers the key under
// every tag.
func (s *MemoryStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration, tags ...string) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[key]; ok {
		s.removeLocked(key, old)
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	e := &entry{
		data:      stored,
		expiresAt: time.Now().Add(ttl),
		tags:      append([]string(nil), tags...),
	}
	s.entries[key] = e

	for _, tag := range tags {
		keys, ok := s.tagIndex[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.tagIndex[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Delete removes an entry and detaches it from its tags.
func (s *MemoryStore) Delete(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.removeLocked(key, e)
	}
}

// InvalidateTags removes every entry registered under the tags. Invalidating
// a tag twice, or a tag with no entries, is a no-op.
func (s *MemoryStore) InvalidateTags(ctx context.Context, tags ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, tag := range tags {
		keys, ok := s.tagIndex[tag]
		if !ok {
			continue
		}
		for key := range keys {
			if e, ok := s.entries[key]; ok {
				s.removeLocked(key, e)
				removed++
			}
		}
		delete(s.tagIndex, tag)
	}

	if removed > 0 {
		Invalidations.WithLabelValues(memoryBackend).Add(float64(removed))
		s.logger.Debug("invalidated cache entries",
			zap.Strings("tags", tags),
			zap.Int("removed", removed),
		)
	}
	return removed
}

// Clear drops all entries and tag indices.
func (s *MemoryStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry)
	s.tagIndex = make(map[string]map[string]struct{})
}

// Len returns the entry count, including entries past expiry that no read
// or sweep has removed yet.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// removeLocked deletes the entry and prunes emptied tag sets. Callers hold
// the mutex.
func (s *MemoryStore) removeLocked(key string, e *entry) {
	delete(s.entries, key)
	for _, tag := range e.tags {
		keys, ok := s.tagIndex[tag]
		if !ok {
			continue
		}
		delete(keys, key)
		if len(keys) == 0 {
			delete(s.tagIndex, tag)
		}
	}
}

// StartSweep launches the periodic cleanup of expired entries. The sweep is
// an optimization; lazy expiry in Get and Has guarantees correctness.
func (s *MemoryStore) StartSweep(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.sweepStop:
				return
			}
		}
	}()
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range s.entries {
		if e.expired(now) {
			s.removeLocked(key, e)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("swept expired cache entries", zap.Int("removed", removed))
	}
}

// Close stops the sweep goroutine.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() {
		close(s.sweepStop)
	})
}
