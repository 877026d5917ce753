package session

import (
	"sync"
	"time"
)

// Store is the dialogue context storage interface. The chat handler
// depends on this rather than the concrete map store, so deployments
// can swap in a shared backend.
type Store interface {
	// Get returns a deep copy of the context, or nil when absent or expired.
	Get(sessionID string) *Context
	// Put stores the context and refreshes its idle timer.
	Put(ctx *Context)
	// Delete removes the context for a session.
	Delete(sessionID string)
	// Count returns the number of live contexts.
	Count() int
}

// MemoryStore is a mutex-protected in-memory Store with TTL expiry.
// A janitor goroutine sweeps idle sessions; Stop shuts it down.
type MemoryStore struct {
	mu       sync.RWMutex
	contexts map[string]*Context
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	onEvict  func(count int)
}

// NewMemoryStore creates a store whose contexts expire after ttl of
// inactivity, swept every cleanupInterval.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		contexts: make(map[string]*Context),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go s.janitor(cleanupInterval)
	return s
}

// OnEvict sets a callback invoked with the live count after each sweep.
func (s *MemoryStore) OnEvict(fn func(count int)) {
	s.mu.Lock()
	s.onEvict = fn
	s.mu.Unlock()
}

// Get returns a deep copy of the stored context, or nil.
// An expired context is treated as absent even before the next sweep.
func (s *MemoryStore) Get(sessionID string) *Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, ok := s.contexts[sessionID]
	if !ok {
		return nil
	}
	if s.ttl > 0 && time.Since(ctx.UpdatedAt) > s.ttl {
		return nil
	}
	return ctx.Clone()
}

// Put stores a deep copy of ctx and refreshes its idle timer.
func (s *MemoryStore) Put(ctx *Context) {
	if ctx == nil || ctx.SessionID == "" {
		return
	}
	stored := ctx.Clone()
	stored.UpdatedAt = time.Now()

	s.mu.Lock()
	s.contexts[ctx.SessionID] = stored
	s.mu.Unlock()
}

// Delete removes the context for a session.
func (s *MemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.contexts, sessionID)
	s.mu.Unlock()
}

// Count returns the number of live contexts.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contexts)
}

// janitor periodically evicts idle contexts.
func (s *MemoryStore) janitor(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	for id, ctx := range s.contexts {
		if ctx.UpdatedAt.Before(cutoff) {
			delete(s.contexts, id)
		}
	}
	count := len(s.contexts)
	onEvict := s.onEvict
	s.mu.Unlock()

	if onEvict != nil {
		onEvict(count)
	}
}

// Stop shuts down the janitor goroutine. Safe to call multiple times.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Interface assertion.
var _ Store = (*MemoryStore)(nil)
