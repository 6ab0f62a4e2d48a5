package history

import (
	"context"
	"sync"
	"time"
)

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the history in process memory. It is the default backend
// for the CLI and for tests; nothing survives a restart.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []Entry // newest first
	capacity int
}

// NewMemoryStore returns a store bounded to capacity entries.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{capacity: capacity}
}

func (s *MemoryStore) Add(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.entries = append([]Entry{*entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) Search(ctx context.Context, filter Filter) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.entries))
	for i := range s.entries {
		if filter.Matches(&s.entries[i]) {
			out = append(out, s.entries[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
