package client

import "sync"

// TokenStore holds the bearer token pair for one session. Implementations
// must be safe for concurrent use; the transport reads and writes it on every
// request.
type TokenStore interface {
	Access() string
	Refresh() string
	Set(access, refresh string)
	Clear()
}

// MemoryTokenStore is an in-process TokenStore. Tokens live only as long as
// the process; persisting them is the caller's concern.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewMemoryTokenStore(access, refresh string) *MemoryTokenStore {
	return &MemoryTokenStore{access: access, refresh: refresh}
}

func (s *MemoryTokenStore) Access() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.access
}

func (s *MemoryTokenStore) Refresh() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refresh
}

func (s *MemoryTokenStore) Set(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = access
	s.refresh = refresh
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""
}
