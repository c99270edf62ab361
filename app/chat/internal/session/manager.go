package session

import (
	"context"
	"sync"

	"EmotionAI/app/chat/internal/dialogue"
)

// Manager glues the store to the dialogue controller and serializes turns
// per user. Two concurrent messages from the same user run one after the
// other against a consistent session; different users never contend.
type Manager struct {
	store      Store
	controller *dialogue.Controller
	newID      func() string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store Store, controller *dialogue.Controller, newID func() string) *Manager {
	return &Manager{
		store:      store,
		controller: controller,
		newID:      newID,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (m *Manager) userLock(userID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}

// ProcessTurn loads (or creates) the user's session, advances it one turn
// and writes it back. created reports whether this turn opened a new session.
func (m *Manager) ProcessTurn(ctx context.Context, userID, message string) (*dialogue.Turn, *dialogue.Session, bool, error) {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	created := false
	sess, err := m.store.Get(ctx, userID)
	if err == ErrNotFound {
		sess = dialogue.NewSession(m.newID(), userID)
		created = true
	} else if err != nil {
		return nil, nil, false, err
	}

	turn := m.controller.ProcessTurn(ctx, sess, message)
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, nil, false, err
	}
	return turn, sess, created, nil
}

// CurrentState returns the user's session without advancing it.
func (m *Manager) CurrentState(ctx context.Context, userID string) (*dialogue.Session, error) {
	return m.store.Get(ctx, userID)
}

// Reset rewinds the user's session to the greeting state, keeping its
// identity and history. Missing sessions surface ErrNotFound.
func (m *Manager) Reset(ctx context.Context, userID string) (*dialogue.Session, error) {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := m.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.Reset()
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RecordSuggestion appends a suggested fragrance to the session history.
func (m *Manager) RecordSuggestion(ctx context.Context, userID, fragranceName string) error {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := m.store.Get(ctx, userID)
	if err != nil {
		return err
	}
	sess.FragrancesSuggested = append(sess.FragrancesSuggested, fragranceName)
	return m.store.Put(ctx, sess)
}

// Close deletes the user's session outright. Used by the expiry task.
func (m *Manager) Close(ctx context.Context, userID string) error {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return m.store.Delete(ctx, userID)
}
