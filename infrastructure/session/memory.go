package session

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: map[string]time.Time{}}
}

func (s *memoryStore) Open(_ context.Context, idCard string, loginTime time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[idCard] = loginTime
	return nil
}

func (s *memoryStore) Lookup(_ context.Context, idCard string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loginTime, ok := s.sessions[idCard]
	if !ok {
		return time.Time{}, ErrNoSession
	}
	return loginTime, nil
}

func (s *memoryStore) Close(_ context.Context, idCard string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[idCard]; !ok {
		return ErrNoSession
	}
	delete(s.sessions, idCard)
	return nil
}
