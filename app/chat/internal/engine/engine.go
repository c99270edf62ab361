// Package engine assembles the lexical classification stack: the emotion and
// intent classifiers plus the arbiter that resolves conflicts between them.
// Everything here is deterministic rule matching; no model inference happens
// at request time.
package engine

import (
	"fmt"

	"EmotionAI/app/chat/internal/engine/arbiter"
	"EmotionAI/app/chat/internal/engine/lexicon"
)

type Config struct {
	Emotion lexicon.Config
	Intent  lexicon.Config
	Arbiter arbiter.Config
}

type Engine struct {
	Emotion *lexicon.Classifier
	Intent  *lexicon.Classifier
	Arbiter *arbiter.Arbiter
}

func New(c Config) (*Engine, error) {
	emotion, err := lexicon.NewClassifier(c.Emotion)
	if err != nil {
		return nil, fmt.Errorf("emotion classifier: %w", err)
	}
	intent, err := lexicon.NewClassifier(c.Intent)
	if err != nil {
		return nil, fmt.Errorf("intent classifier: %w", err)
	}
	return &Engine{
		Emotion: emotion,
		Intent:  intent,
		Arbiter: arbiter.New(emotion, intent, c.Arbiter),
	}, nil
}

// MustNew panics on configuration errors; lexicon problems are fatal at
// startup, not at turn-processing time.
func MustNew(c Config) *Engine {
	e, err := New(c)
	if err != nil {
		panic(err)
	}
	return e
}
