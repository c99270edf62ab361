package dialogue

import (
	"context"
	"time"

	"EmotionAI/app/chat/internal/engine/lexicon"

	"github.com/zeromicro/go-zero/core/logx"
)

// Default acceptance thresholds. AskFeeling runs lower than SmallTalk on
// purpose: by the time the machine is in AskFeeling the user has already
// agreed to share a feeling, so the bar drops.
const (
	DefaultSmallTalkThreshold  = 0.3
	DefaultAskFeelingThreshold = 0.2
)

// EmotionClassifier is the scored emotion side of the engine.
type EmotionClassifier interface {
	Classify(text string) lexicon.Result
}

// Turn is the structured result of processing one message. PrevState and
// State together let callers detect a transition without re-deriving it.
type Turn struct {
	Response    string   `json:"response"`
	State       State    `json:"state"`
	PrevState   State    `json:"prev_state"`
	Suggestions []string `json:"suggestions"`
	Emotion     string   `json:"emotion,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
}

type Config struct {
	SmallTalkThreshold  float64
	AskFeelingThreshold float64
	Detectors           Detectors
}

// Controller advances a Session through the dialogue state machine. It
// holds no per-user state itself and is safe to share across sessions.
type Controller struct {
	emotion             EmotionClassifier
	detectors           Detectors
	smallTalkThreshold  float64
	askFeelingThreshold float64
}

func NewController(emotion EmotionClassifier, c Config) (*Controller, error) {
	if c.SmallTalkThreshold <= 0 {
		c.SmallTalkThreshold = DefaultSmallTalkThreshold
	}
	if c.AskFeelingThreshold <= 0 {
		c.AskFeelingThreshold = DefaultAskFeelingThreshold
	}
	if len(c.Detectors.Agreement) == 0 && len(c.Detectors.End) == 0 &&
		len(c.Detectors.Disagreement) == 0 && len(c.Detectors.Restart) == 0 {
		c.Detectors = DefaultDetectors()
	}
	if err := c.Detectors.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		emotion:             emotion,
		detectors:           c.Detectors,
		smallTalkThreshold:  c.SmallTalkThreshold,
		askFeelingThreshold: c.AskFeelingThreshold,
	}, nil
}

func MustNewController(emotion EmotionClassifier, c Config) *Controller {
	ctrl, err := NewController(emotion, c)
	if err != nil {
		panic(err)
	}
	return ctrl
}

// Detectors exposes the boolean detectors for callers that need the raw
// primitives (analytics, tests).
func (c *Controller) Detectors() Detectors { return c.detectors }

// ProcessTurn checks the two global interrupts, then dispatches on the
// current state. The session is mutated in place; the returned Turn carries
// both the previous and the new state. It never fails: unmatched or garbage
// input flows through the normal per-state fallbacks.
func (c *Controller) ProcessTurn(ctx context.Context, sess *Session, message string) *Turn {
	log := logx.WithContext(ctx)
	prev := sess.State

	var turn *Turn
	switch {
	case c.detectors.IsRestartIntent(message):
		log.Infof("restart intent detected, resetting session for user %s", sess.UserID)
		sess.Reset()
		turn = c.handleGreeting(sess)
	case c.detectors.IsEndIntent(message):
		sess.State = StateEndSession
		turn = c.endTurn(sess)
	default:
		switch sess.State {
		case StateGreeting:
			turn = c.handleGreeting(sess)
		case StateSmallTalk:
			turn = c.handleSmallTalk(sess, message)
		case StateEmotionDetected:
			turn = c.handleEmotionDetected(sess, message)
		case StateUnknownContext:
			turn = c.handleUnknownContext(sess, message)
		case StateAskFeeling:
			turn = c.handleAskFeeling(sess, message)
		case StateSuggestFragrance:
			turn = c.handleSuggestFragrance(sess, message)
		default: // EndSession is terminal until a restart interrupt
			turn = c.endTurn(sess)
		}
	}

	sess.UpdatedAt = time.Now()
	turn.PrevState = prev
	if prev != turn.State {
		log.Infof("state transition for user %s: %s -> %s", sess.UserID, prev, turn.State)
	}
	return turn
}

func (c *Controller) handleGreeting(sess *Session) *Turn {
	sess.State = StateSmallTalk
	return &Turn{
		Response:    greetingText,
		State:       sess.State,
		Suggestions: greetingSuggestions(),
	}
}

func (c *Controller) handleSmallTalk(sess *Session, message string) *Turn {
	res := c.emotion.Classify(message)
	if res.Confidence > c.smallTalkThreshold {
		return c.emotionDetectedTurn(sess, res)
	}
	sess.State = StateUnknownContext
	return &Turn{
		Response:    unknownContextText,
		State:       sess.State,
		Suggestions: unknownContextSuggestions(),
	}
}

func (c *Controller) handleEmotionDetected(sess *Session, message string) *Turn {
	if c.detectors.IsAgreement(message) {
		sess.State = StateSuggestFragrance
		return &Turn{
			Response:    suggestFragranceText,
			State:       sess.State,
			Suggestions: continueSuggestions(),
			Emotion:     sess.Emotion,
			Confidence:  sess.Confidence,
		}
	}
	sess.State = StateSmallTalk
	return &Turn{
		Response:    reassureShareText,
		State:       sess.State,
		Suggestions: shareSuggestions(),
	}
}

func (c *Controller) handleUnknownContext(sess *Session, message string) *Turn {
	if c.detectors.IsAgreement(message) {
		sess.State = StateAskFeeling
		return &Turn{
			Response:    askFeelingText,
			State:       sess.State,
			Suggestions: greetingSuggestions(),
		}
	}
	sess.State = StateSmallTalk
	return &Turn{
		Response:    reassureTalkText,
		State:       sess.State,
		Suggestions: shareSuggestions(),
	}
}

func (c *Controller) handleAskFeeling(sess *Session, message string) *Turn {
	res := c.emotion.Classify(message)
	if res.Confidence > c.askFeelingThreshold {
		return c.emotionDetectedTurn(sess, res)
	}
	sess.State = StateSmallTalk
	return &Turn{
		Response:    reassureLaterText,
		State:       sess.State,
		Suggestions: shareSuggestions(),
	}
}

func (c *Controller) handleSuggestFragrance(sess *Session, message string) *Turn {
	if c.detectors.IsAgreement(message) {
		sess.State = StateAskFeeling
		return &Turn{
			Response:    askMoreText,
			State:       sess.State,
			Suggestions: moreFeelingSuggestions(),
		}
	}
	sess.State = StateSmallTalk
	return &Turn{
		Response:    reassureShareText,
		State:       sess.State,
		Suggestions: shareSuggestions(),
	}
}

func (c *Controller) emotionDetectedTurn(sess *Session, res lexicon.Result) *Turn {
	sess.Emotion = res.Category
	sess.Confidence = res.Confidence
	sess.EmotionsDiscussed = append(sess.EmotionsDiscussed, res.Category)
	sess.State = StateEmotionDetected
	return &Turn{
		Response:    emotionDetectedText(res.Category),
		State:       sess.State,
		Suggestions: confirmSuggestions(),
		Emotion:     res.Category,
		Confidence:  res.Confidence,
	}
}

func (c *Controller) endTurn(sess *Session) *Turn {
	return &Turn{
		Response:    endSessionText,
		State:       StateEndSession,
		Suggestions: restartSuggestions(),
	}
}
