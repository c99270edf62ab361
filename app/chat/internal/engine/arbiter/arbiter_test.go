package arbiter

import (
	"testing"

	"EmotionAI/app/chat/internal/engine/lexicon"

	"github.com/stretchr/testify/assert"
)

type stub struct {
	res lexicon.Result
}

func (s stub) Classify(string) lexicon.Result { return s.res }

func newStubArbiter(emotion, intent lexicon.Result) *Arbiter {
	return New(stub{emotion}, stub{intent}, Config{})
}

func TestAnalyzeFirstPersonPrefersEmotion(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionNegative, Confidence: 0.67},
		lexicon.Result{Category: IntentEnd, Confidence: 0.5},
	)
	res := a.Analyze("tôi mệt quá, thôi")
	assert.Equal(t, TypeEmotion, res.Type)
	assert.Equal(t, EmotionNegative, res.Emotion)
}

func TestAnalyzeControlIntentsWin(t *testing.T) {
	for _, intent := range []string{IntentRestart, IntentDisagreement, IntentAgreement} {
		a := newStubArbiter(
			lexicon.Result{Category: EmotionNeutral, Confidence: 0.9},
			lexicon.Result{Category: intent, Confidence: 0.5},
		)
		res := a.Analyze("làm lại đi")
		assert.Equal(t, TypeIntent, res.Type, intent)
		assert.Equal(t, intent, res.Intent)
	}
}

func TestAnalyzeAgreementYieldsToPositiveEmotion(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionPositive, Confidence: 0.67},
		lexicon.Result{Category: IntentAgreement, Confidence: 0.5},
	)
	res := a.Analyze("vui lắm, được đó")
	assert.Equal(t, TypeEmotion, res.Type)
	assert.Equal(t, EmotionPositive, res.Emotion)
}

func TestAnalyzeAgreementKeepsIntentOnWeakEmotion(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionPositive, Confidence: 0.2},
		lexicon.Result{Category: IntentAgreement, Confidence: 0.5},
	)
	res := a.Analyze("được đó")
	assert.Equal(t, TypeIntent, res.Type)
	assert.Equal(t, IntentAgreement, res.Intent)
}

func TestAnalyzeQuestionIntent(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{},
		lexicon.Result{Category: IntentQuestion, Confidence: 0.5},
	)
	res := a.Analyze("sao vậy")
	assert.Equal(t, TypeIntent, res.Type)
	assert.Equal(t, IntentQuestion, res.Intent)
}

func TestAnalyzeEndOnlyWithoutStrongEmotion(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionNegative, Confidence: 0.1},
		lexicon.Result{Category: IntentEnd, Confidence: 0.5},
	)
	res := a.Analyze("thôi nhé")
	assert.Equal(t, TypeIntent, res.Type)
	assert.Equal(t, IntentEnd, res.Intent)
}

func TestAnalyzeEndWithStrongEmotionPrefersEmotion(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionNegative, Confidence: 0.67},
		lexicon.Result{Category: IntentEnd, Confidence: 0.5},
	)
	res := a.Analyze("buồn quá, thôi dừng ở đây")
	assert.Equal(t, TypeEmotion, res.Type)
	assert.Equal(t, EmotionNegative, res.Emotion)
}

func TestAnalyzeEmotionFallback(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionNeutral, Confidence: 0.4},
		lexicon.Result{},
	)
	res := a.Analyze("hôm nay bình thường")
	assert.Equal(t, TypeEmotion, res.Type)
	assert.Equal(t, EmotionNeutral, res.Emotion)
}

func TestAnalyzeUnknown(t *testing.T) {
	a := newStubArbiter(lexicon.Result{}, lexicon.Result{})
	res := a.Analyze("zzz")
	assert.Equal(t, TypeUnknown, res.Type)
	assert.Empty(t, res.Emotion)
	assert.Empty(t, res.Intent)
}

func TestAnalyzeCarriesRawScores(t *testing.T) {
	a := newStubArbiter(
		lexicon.Result{Category: EmotionPositive, Confidence: 0.67},
		lexicon.Result{Category: IntentQuestion, Confidence: 0.5},
	)
	res := a.Analyze("vui không?")
	assert.Equal(t, EmotionPositive, res.Emotion)
	assert.InDelta(t, 0.67, res.EmotionConfidence, 1e-9)
	assert.Equal(t, IntentQuestion, res.Intent)
	assert.InDelta(t, 0.5, res.IntentConfidence, 1e-9)
}
