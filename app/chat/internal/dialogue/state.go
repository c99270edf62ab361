package dialogue

import "fmt"

// State is one of the seven dialogue states. The set is closed; anything
// outside it is a programming error.
type State string

const (
	StateGreeting         State = "greeting"
	StateSmallTalk        State = "small_talk"
	StateEmotionDetected  State = "emotion_detected"
	StateUnknownContext   State = "unknown_context"
	StateAskFeeling       State = "ask_feeling"
	StateSuggestFragrance State = "suggest_fragrance"
	StateEndSession       State = "end_session"
)

func (s State) Valid() bool {
	switch s {
	case StateGreeting, StateSmallTalk, StateEmotionDetected, StateUnknownContext,
		StateAskFeeling, StateSuggestFragrance, StateEndSession:
		return true
	}
	return false
}

func (s State) String() string { return string(s) }

// ParseState maps a stored state string back onto the closed set.
func ParseState(s string) (State, error) {
	st := State(s)
	if !st.Valid() {
		return "", fmt.Errorf("dialogue: unknown state %q", s)
	}
	return st, nil
}
