package arbiter

import (
	"strings"

	"EmotionAI/app/chat/internal/engine/lexicon"
)

// Emotion and intent category names shared across the engine.
const (
	EmotionPositive = "positive"
	EmotionNegative = "negative"
	EmotionNeutral  = "neutral"

	IntentAgreement    = "agreement"
	IntentDisagreement = "disagreement"
	IntentEnd          = "end"
	IntentRestart      = "restart"
	IntentQuestion     = "question"
)

// Dominant interpretation of a turn.
const (
	TypeEmotion = "emotion"
	TypeIntent  = "intent"
	TypeUnknown = "unknown"
)

// Analysis is the arbiter's view of one message. Both raw classifier results
// are preserved regardless of which one the turn is ruled to be about, so
// callers can audit the decision.
type Analysis struct {
	Type              string  `json:"type"`
	Emotion           string  `json:"emotion,omitempty"`
	EmotionConfidence float64 `json:"emotion_confidence"`
	Intent            string  `json:"intent,omitempty"`
	IntentConfidence  float64 `json:"intent_confidence"`
}

// Classifier is the scored-lexicon side of the engine the arbiter consumes.
type Classifier interface {
	Classify(text string) lexicon.Result
}

type Config struct {
	// FirstPerson is the pronoun that marks a feeling statement when it
	// opens the message. Defaults to "tôi".
	FirstPerson string
	// Threshold is the confidence bar a signal must clear to be considered.
	// Defaults to 0.3.
	Threshold float64
}

// Arbiter decides whether a turn is about an emotion or an intent when both
// classifiers fire, applying ordered first-match rules.
type Arbiter struct {
	emotion     Classifier
	intent      Classifier
	firstPerson string
	threshold   float64
}

func New(emotion, intent Classifier, c Config) *Arbiter {
	if c.FirstPerson == "" {
		c.FirstPerson = "tôi"
	}
	if c.Threshold <= 0 {
		c.Threshold = 0.3
	}
	return &Arbiter{
		emotion:     emotion,
		intent:      intent,
		firstPerson: c.FirstPerson,
		threshold:   c.Threshold,
	}
}

// Analyze runs both classifiers and arbitrates:
//
//  1. first-person opening + clear emotion -> emotion
//  2. clear restart/disagreement/agreement intent -> intent, except an
//     agreement with a clear positive emotion reading, which stays a
//     feeling statement
//  3. clear question intent -> intent
//  4. clear end intent with no competing emotion -> intent
//  5. clear emotion -> emotion
//  6. otherwise unknown
func (a *Arbiter) Analyze(text string) Analysis {
	em := a.emotion.Classify(text)
	in := a.intent.Classify(text)

	res := Analysis{
		Type:              TypeUnknown,
		Emotion:           em.Category,
		EmotionConfidence: em.Confidence,
		Intent:            in.Category,
		IntentConfidence:  in.Confidence,
	}

	trimmed := strings.TrimSpace(strings.ToLower(text))
	switch {
	case strings.HasPrefix(trimmed, a.firstPerson) && em.Confidence > a.threshold:
		res.Type = TypeEmotion
	case in.Confidence > a.threshold &&
		(in.Category == IntentRestart || in.Category == IntentDisagreement || in.Category == IntentAgreement):
		if in.Category == IntentAgreement && em.Category == EmotionPositive && em.Confidence > a.threshold {
			res.Type = TypeEmotion
		} else {
			res.Type = TypeIntent
		}
	case in.Confidence > a.threshold && in.Category == IntentQuestion:
		res.Type = TypeIntent
	case in.Confidence > a.threshold && in.Category == IntentEnd && em.Confidence < a.threshold:
		res.Type = TypeIntent
	case em.Confidence > a.threshold:
		res.Type = TypeEmotion
	}
	return res
}
