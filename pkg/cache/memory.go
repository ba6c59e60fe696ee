package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jcoronel/bantay/core"
)

// Config controls session slot lifetime and capacity.
type Config struct {
	TTL     time.Duration // zero means slots never expire
	MaxSize int
}

// Stats tracks session store activity.
type Stats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Puts      int64         `json:"puts"`
	Clears    int64         `json:"clears"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}

// SessionStore is the in-memory core.SessionStore implementation: one
// descriptor slot per caller context, with optional TTL expiry and a
// capacity cap. An expired slot behaves exactly like an empty one.
type SessionStore struct {
	slots   map[string]*slot
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int

	// counters
	hits      int64
	misses    int64
	puts      int64
	clears    int64
	evictions int64
}

type slot struct {
	descriptor *core.SessionDescriptor
	storedAt   time.Time
}

var _ core.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an in-memory session store.
func NewSessionStore(c Config) *SessionStore {
	if c.MaxSize == 0 {
		c.MaxSize = 500
	}

	return &SessionStore{
		slots:   make(map[string]*slot),
		ttl:     c.TTL,
		maxSize: c.MaxSize,
	}
}

// Put stores the descriptor in the context's slot, superseding any previous one.
func (s *SessionStore) Put(contextID string, d *core.SessionDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.slots[contextID]; !exists && len(s.slots) >= s.maxSize {
		s.evictOldestLocked()
	}

	s.slots[contextID] = &slot{
		descriptor: d,
		storedAt:   time.Now(),
	}
	atomic.AddInt64(&s.puts, 1)
	return nil
}

// Get returns the context's descriptor, or core.ErrNoSession when the slot is
// empty or has expired.
func (s *SessionStore) Get(contextID string) (*core.SessionDescriptor, error) {
	s.mu.RLock()
	record, exists := s.slots[contextID]
	s.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&s.misses, 1)
		return nil, core.ErrNoSession
	}

	if s.ttl > 0 && time.Since(record.storedAt) > s.ttl {
		atomic.AddInt64(&s.misses, 1)
		s.mu.Lock()
		// Re-check under the write lock: a fresh Put may have replaced the slot
		if current, ok := s.slots[contextID]; ok && current == record {
			delete(s.slots, contextID)
			atomic.AddInt64(&s.evictions, 1)
		}
		s.mu.Unlock()
		return nil, core.ErrNoSession
	}

	atomic.AddInt64(&s.hits, 1)
	return record.descriptor, nil
}

// Clear empties the context's slot. Clearing an empty slot is a no-op.
func (s *SessionStore) Clear(contextID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.slots[contextID]; exists {
		delete(s.slots, contextID)
		atomic.AddInt64(&s.clears, 1)
	}
	return nil
}

// Len reports the number of occupied slots, including not-yet-collected
// expired ones.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// Stats returns a point-in-time view of store activity.
func (s *SessionStore) Stats() Stats {
	s.mu.RLock()
	size := len(s.slots)
	s.mu.RUnlock()

	return Stats{
		Hits:      atomic.LoadInt64(&s.hits),
		Misses:    atomic.LoadInt64(&s.misses),
		Puts:      atomic.LoadInt64(&s.puts),
		Clears:    atomic.LoadInt64(&s.clears),
		Evictions: atomic.LoadInt64(&s.evictions),
		Size:      size,
		TTL:       s.ttl,
	}
}

// evictOldestLocked removes the stalest slot. Caller must hold the write lock.
func (s *SessionStore) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time

	for key, record := range s.slots {
		if oldestKey == "" || record.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = record.storedAt
		}
	}

	if oldestKey != "" {
		delete(s.slots, oldestKey)
		atomic.AddInt64(&s.evictions, 1)
	}
}
