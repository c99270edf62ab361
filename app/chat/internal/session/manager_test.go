package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"EmotionAI/app/chat/internal/dialogue"
	"EmotionAI/app/chat/internal/engine/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type happyClassifier struct{}

func (happyClassifier) Classify(text string) lexicon.Result {
	if strings.Contains(strings.ToLower(text), "vui") {
		return lexicon.Result{Category: "positive", Confidence: 0.67}
	}
	return lexicon.Result{}
}

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	ctrl, err := dialogue.NewController(happyClassifier{}, dialogue.Config{})
	require.NoError(t, err)
	store := NewMemoryStore()
	var seq int
	newID := func() string {
		seq++
		return fmt.Sprintf("s-%d", seq)
	}
	return NewManager(store, ctrl, newID), store
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	sess := dialogue.NewSession("s-1", "u1")
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.SessionID)
	assert.Equal(t, dialogue.StateGreeting, got.State)

	// the store hands out copies, not aliases
	got.State = dialogue.StateEndSession
	again, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, dialogue.StateGreeting, again.State)

	require.NoError(t, store.Delete(ctx, "u1"))
	_, err = store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerCreatesSessionOnFirstTurn(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	turn, sess, created, err := m.ProcessTurn(ctx, "u1", "hi")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "s-1", sess.SessionID)
	assert.Equal(t, dialogue.StateSmallTalk, turn.State)
	assert.Equal(t, 1, store.Len())

	_, sess2, created, err := m.ProcessTurn(ctx, "u1", "hôm nay vui lắm")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "s-1", sess2.SessionID, "same session across turns")
	assert.Equal(t, dialogue.StateEmotionDetected, sess2.State)
}

func TestManagerIsolatesUsers(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	_, a, _, err := m.ProcessTurn(ctx, "alice", "hi")
	require.NoError(t, err)
	_, b, _, err := m.ProcessTurn(ctx, "bob", "hi")
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Equal(t, 2, store.Len())
}

func TestManagerCurrentStateAndReset(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.CurrentState(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, _, err = m.ProcessTurn(ctx, "u1", "hi")
	require.NoError(t, err)
	_, _, _, err = m.ProcessTurn(ctx, "u1", "vui quá")
	require.NoError(t, err)

	sess, err := m.CurrentState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, dialogue.StateEmotionDetected, sess.State)
	assert.Equal(t, "positive", sess.Emotion)

	reset, err := m.Reset(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, dialogue.StateGreeting, reset.State)
	assert.Empty(t, reset.Emotion)
	assert.Equal(t, sess.SessionID, reset.SessionID)

	_, err = m.Reset(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerRecordSuggestion(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.RecordSuggestion(ctx, "u1", "Lavender Dream"), ErrNotFound)

	_, _, _, err := m.ProcessTurn(ctx, "u1", "hi")
	require.NoError(t, err)
	require.NoError(t, m.RecordSuggestion(ctx, "u1", "Lavender Dream"))

	sess, err := m.CurrentState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lavender Dream"}, sess.FragrancesSuggested)
}

func TestManagerClose(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	_, _, _, err := m.ProcessTurn(ctx, "u1", "hi")
	require.NoError(t, err)
	require.NoError(t, m.Close(ctx, "u1"))
	assert.Equal(t, 0, store.Len())
}

func TestManagerSerializesConcurrentTurns(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	const turns = 32
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _, err := m.ProcessTurn(ctx, "u1", "zzz")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sess, err := m.CurrentState(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, sess.State.Valid())
}
