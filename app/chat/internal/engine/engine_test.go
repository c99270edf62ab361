package engine

import (
	"testing"

	"EmotionAI/app/chat/internal/engine/arbiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(DefaultConfig())
	require.NoError(t, err)
	return eng
}

func TestDefaultConfigIsValid(t *testing.T) {
	_, err := New(DefaultConfig())
	assert.NoError(t, err)
}

func TestEmotionPositiveSentence(t *testing.T) {
	eng := defaultEngine(t)
	res := eng.Emotion.Classify("tôi đang rất vui")
	assert.Equal(t, arbiter.EmotionPositive, res.Category)
	assert.Greater(t, res.Confidence, 0.3)
}

func TestEmotionTruncatedStressOverride(t *testing.T) {
	eng := defaultEngine(t)
	for _, msg := range []string{"tôi bị stre", "stress quá", "đang stre ss"} {
		res := eng.Emotion.Classify(msg)
		assert.Equal(t, arbiter.EmotionNegative, res.Category, msg)
	}
	res := eng.Emotion.Classify("tôi bị stre")
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
}

func TestEmotionUncertaintyReadsNeutral(t *testing.T) {
	eng := defaultEngine(t)
	for _, msg := range []string{"không biết", "khong biet nua", "tôi không chắc"} {
		res := eng.Emotion.Classify(msg)
		assert.Equal(t, arbiter.EmotionNeutral, res.Category, msg)
		assert.InDelta(t, 0.5, res.Confidence, 1e-9, msg)
	}
}

func TestIntentUncertaintyIsNotAnIntent(t *testing.T) {
	eng := defaultEngine(t)
	res := eng.Intent.Classify("không biết")
	assert.Empty(t, res.Category)
	assert.Zero(t, res.Confidence)
}

func TestIntentBareQuestionParticle(t *testing.T) {
	eng := defaultEngine(t)
	res := eng.Intent.Classify("vậy")
	assert.Equal(t, arbiter.IntentQuestion, res.Category)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
}

func TestIntentStopWordSuppressedInFirstPerson(t *testing.T) {
	eng := defaultEngine(t)

	res := eng.Intent.Classify("thôi nhé")
	assert.Equal(t, arbiter.IntentEnd, res.Category)

	// "tôi" is one deletion from "thoi"; first-person sentences must not
	// score as an end intent through that channel
	res = eng.Intent.Classify("tôi đang mệt")
	assert.NotEqual(t, arbiter.IntentEnd, res.Category)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	eng := defaultEngine(t)

	res := eng.Arbiter.Analyze("tôi đang rất vui")
	assert.Equal(t, arbiter.TypeEmotion, res.Type)
	assert.Equal(t, arbiter.EmotionPositive, res.Emotion)

	res = eng.Arbiter.Analyze("tạm biệt")
	assert.Equal(t, arbiter.TypeIntent, res.Type)
	assert.Equal(t, arbiter.IntentEnd, res.Intent)

	res = eng.Arbiter.Analyze("zzz")
	assert.Equal(t, arbiter.TypeUnknown, res.Type)
}

func TestNewRejectsBrokenConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emotion.Norm = 0
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Intent.Categories = nil
	_, err = New(cfg)
	assert.Error(t, err)
}
