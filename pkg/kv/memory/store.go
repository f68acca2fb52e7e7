// Package memory implements the kv port in process memory, for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/leapbw/leapauth/pkg/kv"
)

var _ kv.Store = (*Store)(nil)

// Store keeps JSON-encoded values in a map. Values round-trip through the
// codec so behavior matches the durable backends.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte

	// counters
	hits   int64
	misses int64
	sets   int64
}

// Stats tracks store usage, mostly useful in tests.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
	Size   int   `json:"size"`
}

func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = payload
	atomic.AddInt64(&s.sets, 1)
	return nil
}

func (s *Store) Get(ctx context.Context, key string, out any) error {
	s.mu.RLock()
	payload, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&s.misses, 1)
		return kv.ErrKeyNotFound
	}

	atomic.AddInt64(&s.hits, 1)
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode value for %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string][]byte)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *Store) Stats() Stats {
	return Stats{
		Hits:   atomic.LoadInt64(&s.hits),
		Misses: atomic.LoadInt64(&s.misses),
		Sets:   atomic.LoadInt64(&s.sets),
		Size:   s.Len(),
	}
}
