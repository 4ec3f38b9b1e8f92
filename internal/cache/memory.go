package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is an in-process Cache. Safe for concurrent use.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

// NewMemory constructs a Memory cache holding at most maxEntries values.
// A non-positive maxEntries means unbounded.
func NewMemory(maxEntries int) *Memory {
	return &Memory{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns a copy of the cached value.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if now := m.now(); entry.expired(now) {
		m.removeExpired(key, now)
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

// removeExpired deletes key only if the entry stored now is still expired.
func (m *Memory) removeExpired(key string, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok && e.expired(now) {
		delete(m.entries, key)
	}
}

// Set stores a copy of value. A non-positive ttl never expires.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := memoryEntry{value: append([]byte(nil), value...)}
	now := m.now()
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.evictLocked(now)
	}
	m.entries[key] = entry
	return nil
}

// evictLocked drops expired entries, then the entry closest to expiry if the
// cache is still full. Entries without expiry go last, by key order.
func (m *Memory) evictLocked(now time.Time) {
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
		}
	}
	if len(m.entries) < m.maxEntries {
		return
	}

	var (
		victim string
		best   time.Time
		picked bool
	)
	for k, e := range m.entries {
		if !picked || evictsBefore(e.expiresAt, k, best, victim) {
			victim, best, picked = k, e.expiresAt, true
		}
	}
	delete(m.entries, victim)
}

func evictsBefore(exp time.Time, key string, otherExp time.Time, otherKey string) bool {
	switch {
	case exp.IsZero() && otherExp.IsZero():
		return key < otherKey
	case exp.IsZero():
		return false
	case otherExp.IsZero():
		return true
	case exp.Equal(otherExp):
		return key < otherKey
	default:
		return exp.Before(otherExp)
	}
}

// Len returns the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *Memory) Close() error { return nil }
