// Package session owns dialogue session storage and the per-user turn
// serialization the state machine requires. Backings are pluggable; the
// service wires the redis store and tests use the in-memory one.
package session

import (
	"context"
	"errors"

	"EmotionAI/app/chat/internal/dialogue"
)

// ErrNotFound is returned by Get when the user has no live session.
var ErrNotFound = errors.New("session not found")

// Store is the session store abstraction, keyed by user id. A user has at
// most one live session.
type Store interface {
	Get(ctx context.Context, userID string) (*dialogue.Session, error)
	Put(ctx context.Context, sess *dialogue.Session) error
	Delete(ctx context.Context, userID string) error
}
