package otpstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is a process-local Store used in dev mode and tests.
type Memory struct {
	mu    sync.Mutex
	codes map[string]memoryEntry
	locks map[string]memoryEntry
	sent  map[string]memoryEntry
	now   func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		codes: map[string]memoryEntry{},
		locks: map[string]memoryEntry{},
		sent:  map[string]memoryEntry{},
		now:   time.Now,
	}
}

func (m *Memory) SaveCode(ctx context.Context, userID, code string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[userID] = memoryEntry{value: code, expiresAt: m.expiry(ttl)}
	return nil
}

func (m *Memory) Code(ctx context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.codes[userID]
	if !ok || entry.expired(m.now()) {
		delete(m.codes, userID)
		return "", ErrNoCode
	}
	return entry.value, nil
}

func (m *Memory) DeleteCode(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.codes, userID)
	return nil
}

func (m *Memory) AcquireLock(ctx context.Context, userID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.locks[userID]; ok && !entry.expired(m.now()) {
		return false, nil
	}
	m.locks[userID] = memoryEntry{value: "1", expiresAt: m.expiry(ttl)}
	return true, nil
}

func (m *Memory) ReleaseLock(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, userID)
	return nil
}

func (m *Memory) MarkSent(ctx context.Context, userID string, window time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if window <= 0 {
		delete(m.sent, userID)
		return nil
	}
	m.sent[userID] = memoryEntry{value: "1", expiresAt: m.now().Add(window)}
	return nil
}

func (m *Memory) RecentlySent(ctx context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sent[userID]
	if !ok || entry.expired(m.now()) {
		delete(m.sent, userID)
		return false, nil
	}
	return true, nil
}

func (m *Memory) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return m.now().Add(ttl)
}
