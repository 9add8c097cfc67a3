// Package session keeps the API bearer token for one browser.
package session

import "sync"

// TokenStore holds at most one bearer token. A present token may be stale;
// only the API can tell.
type TokenStore interface {
	Get() (string, bool)
	Set(token string)
	Clear()
}

// MemoryStore is a TokenStore that lives in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	ok    bool
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token, ok: token != ""}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.ok
}

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.ok = token, true
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.ok = "", false
}
