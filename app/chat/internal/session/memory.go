package session

import (
	"context"
	"sync"

	"EmotionAI/app/chat/internal/dialogue"
)

// MemoryStore keeps sessions in a process-local map. It carries no eviction
// of its own; retention is bounded by the expiry task deleting sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*dialogue.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*dialogue.Session)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*dialogue.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) Put(_ context.Context, sess *dialogue.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.UserID] = &cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

// Len reports how many sessions are live. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
