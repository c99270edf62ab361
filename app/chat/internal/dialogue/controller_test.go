package dialogue

import (
	"context"
	"strings"
	"testing"

	"EmotionAI/app/chat/internal/engine"
	"EmotionAI/app/chat/internal/engine/arbiter"
	"EmotionAI/app/chat/internal/engine/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassifier scores by plain substring lookup so tests control the
// confidence precisely.
type fakeClassifier struct {
	hits map[string]lexicon.Result
}

func (f fakeClassifier) Classify(text string) lexicon.Result {
	lower := strings.ToLower(text)
	for kw, res := range f.hits {
		if strings.Contains(lower, kw) {
			return res
		}
	}
	return lexicon.Result{}
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	fake := fakeClassifier{hits: map[string]lexicon.Result{
		"buồn": {Category: arbiter.EmotionNegative, Confidence: 0.67},
		"tàm":  {Category: arbiter.EmotionNeutral, Confidence: 0.25},
	}}
	ctrl, err := NewController(fake, Config{})
	require.NoError(t, err)
	return ctrl
}

func newTestSession(state State) *Session {
	sess := NewSession("1001", "u1")
	sess.State = state
	return sess
}

func TestGreetingAlwaysAdvancesToSmallTalk(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateGreeting)

	turn := ctrl.ProcessTurn(context.Background(), sess, "zzz")
	assert.Equal(t, StateGreeting, turn.PrevState)
	assert.Equal(t, StateSmallTalk, turn.State)
	assert.Equal(t, StateSmallTalk, sess.State)
	assert.NotEmpty(t, turn.Response)
	assert.NotEmpty(t, turn.Suggestions)
}

func TestSmallTalkDetectsEmotion(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateSmallTalk)

	turn := ctrl.ProcessTurn(context.Background(), sess, "hôm nay buồn quá")
	assert.Equal(t, StateEmotionDetected, turn.State)
	assert.Equal(t, arbiter.EmotionNegative, turn.Emotion)
	assert.InDelta(t, 0.67, turn.Confidence, 1e-9)
	assert.Equal(t, arbiter.EmotionNegative, sess.Emotion)
	assert.Equal(t, []string{arbiter.EmotionNegative}, sess.EmotionsDiscussed)
}

func TestSmallTalkUnclearGoesToUnknownContext(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateSmallTalk)

	turn := ctrl.ProcessTurn(context.Background(), sess, "zzz")
	assert.Equal(t, StateUnknownContext, turn.State)
	assert.Empty(t, turn.Emotion)
}

func TestSmallTalkWeakEmotionBelowThreshold(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateSmallTalk)

	// 0.25 clears the ask-feeling bar but not the small-talk bar
	turn := ctrl.ProcessTurn(context.Background(), sess, "tàm tạm")
	assert.Equal(t, StateUnknownContext, turn.State)
}

func TestEmotionDetectedAgreementSuggests(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateEmotionDetected)
	sess.Emotion = arbiter.EmotionNegative
	sess.Confidence = 0.67

	turn := ctrl.ProcessTurn(context.Background(), sess, "có")
	assert.Equal(t, StateSuggestFragrance, turn.State)
	assert.Equal(t, arbiter.EmotionNegative, turn.Emotion)
	assert.InDelta(t, 0.67, turn.Confidence, 1e-9)
}

func TestEmotionDetectedRefusalReturnsToSmallTalk(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateEmotionDetected)

	turn := ctrl.ProcessTurn(context.Background(), sess, "zzz")
	assert.Equal(t, StateSmallTalk, turn.State)
}

func TestUnknownContextAgreementAsksFeeling(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateUnknownContext)

	turn := ctrl.ProcessTurn(context.Background(), sess, "ok")
	assert.Equal(t, StateAskFeeling, turn.State)

	sess = newTestSession(StateUnknownContext)
	turn = ctrl.ProcessTurn(context.Background(), sess, "zzz")
	assert.Equal(t, StateSmallTalk, turn.State)
}

func TestAskFeelingUsesLowerThreshold(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateAskFeeling)

	turn := ctrl.ProcessTurn(context.Background(), sess, "tàm tạm")
	assert.Equal(t, StateEmotionDetected, turn.State)
	assert.Equal(t, arbiter.EmotionNeutral, turn.Emotion)

	sess = newTestSession(StateAskFeeling)
	turn = ctrl.ProcessTurn(context.Background(), sess, "zzz")
	assert.Equal(t, StateSmallTalk, turn.State)
}

func TestSuggestFragranceAgreementAsksForMore(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateSuggestFragrance)

	turn := ctrl.ProcessTurn(context.Background(), sess, "tiếp tục")
	assert.Equal(t, StateAskFeeling, turn.State)

	sess = newTestSession(StateSuggestFragrance)
	turn = ctrl.ProcessTurn(context.Background(), sess, "zzz")
	assert.Equal(t, StateSmallTalk, turn.State)
}

func TestEndInterruptFromEveryState(t *testing.T) {
	ctrl := newTestController(t)
	for _, state := range []State{
		StateGreeting, StateSmallTalk, StateEmotionDetected,
		StateUnknownContext, StateAskFeeling, StateSuggestFragrance,
	} {
		sess := newTestSession(state)
		turn := ctrl.ProcessTurn(context.Background(), sess, "tạm biệt")
		assert.Equal(t, StateEndSession, turn.State, state)
		assert.Equal(t, StateEndSession, sess.State, state)
	}
}

func TestEndSessionIsTerminalUntilRestart(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateEndSession)

	turn := ctrl.ProcessTurn(context.Background(), sess, "zzz buồn")
	assert.Equal(t, StateEndSession, turn.State)

	turn = ctrl.ProcessTurn(context.Background(), sess, "bắt đầu lại")
	assert.Equal(t, StateSmallTalk, turn.State)
	assert.Equal(t, StateEndSession, turn.PrevState)
}

func TestRestartInterruptResetsSession(t *testing.T) {
	ctrl := newTestController(t)
	sess := newTestSession(StateSuggestFragrance)
	sess.Emotion = arbiter.EmotionNegative
	sess.Confidence = 0.67
	sess.EmotionsDiscussed = []string{arbiter.EmotionNegative}

	turn := ctrl.ProcessTurn(context.Background(), sess, "bắt đầu lại")
	assert.Equal(t, StateSmallTalk, turn.State)
	assert.Empty(t, sess.Emotion)
	assert.Zero(t, sess.Confidence)
	assert.Equal(t, []string{arbiter.EmotionNegative}, sess.EmotionsDiscussed,
		"history survives a restart")
	assert.Equal(t, "1001", sess.SessionID)
}

// The scenarios below run the controller against the real engine lexicons.

func realController(t *testing.T) *Controller {
	t.Helper()
	eng, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	return MustNewController(eng.Emotion, Config{})
}

func TestScenarioHappyPath(t *testing.T) {
	ctrl := realController(t)
	sess := NewSession("1", "u1")

	turn := ctrl.ProcessTurn(context.Background(), sess, "hi")
	require.Equal(t, StateSmallTalk, turn.State)

	turn = ctrl.ProcessTurn(context.Background(), sess, "tôi đang rất vui")
	require.Equal(t, StateEmotionDetected, turn.State)
	require.Equal(t, arbiter.EmotionPositive, turn.Emotion)
	require.Greater(t, turn.Confidence, 0.3)

	turn = ctrl.ProcessTurn(context.Background(), sess, "yes")
	require.Equal(t, StateSuggestFragrance, turn.State)
	require.Equal(t, arbiter.EmotionPositive, turn.Emotion)
}

func TestScenarioUncertainAnswerIsNeutral(t *testing.T) {
	ctrl := realController(t)
	sess := newTestSession(StateSmallTalk)

	turn := ctrl.ProcessTurn(context.Background(), sess, "không biết")
	require.Equal(t, StateEmotionDetected, turn.State)
	require.Equal(t, arbiter.EmotionNeutral, turn.Emotion)
	require.InDelta(t, 0.5, turn.Confidence, 1e-9)
}

func TestScenarioFarewellEndsSession(t *testing.T) {
	ctrl := realController(t)
	sess := newTestSession(StateSmallTalk)

	turn := ctrl.ProcessTurn(context.Background(), sess, "tạm biệt nhé")
	require.Equal(t, StateEndSession, turn.State)
}

func TestScenarioEmptyMessageFallsThrough(t *testing.T) {
	ctrl := realController(t)
	sess := newTestSession(StateSmallTalk)

	turn := ctrl.ProcessTurn(context.Background(), sess, "")
	require.Equal(t, StateUnknownContext, turn.State)
	require.NotEmpty(t, turn.Response)
}
