package services

import (
	"sync"
	"time"

	"github.com/jcoronel/bantay/core"
)

// FakeSessionStore is a test-only fake implementing core.SessionStore.
// It stores descriptors in a map and exposes error fields for behavior injection.
type FakeSessionStore struct {
	slots    map[string]*core.SessionDescriptor
	mu       sync.RWMutex
	putErr   error
	getErr   error
	clearErr error
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{
		slots: make(map[string]*core.SessionDescriptor),
	}
}

func (f *FakeSessionStore) Put(contextID string, d *core.SessionDescriptor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.slots[contextID] = d
	return nil
}

func (f *FakeSessionStore) Get(contextID string) (*core.SessionDescriptor, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	d, ok := f.slots[contextID]
	if !ok {
		return nil, core.ErrNoSession
	}
	return d, nil
}

func (f *FakeSessionStore) Clear(contextID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.slots, contextID)
	return nil
}

// TestClock is a settable clock for pinning timestamps in tests.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewTestClock(start time.Time) *TestClock {
	return &TestClock{now: start}
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
