package dialogue

import "time"

// Session is the per-user dialogue context. One user owns exactly one live
// session; turns within it are processed strictly sequentially by the
// session manager.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	State     State  `json:"state"`
	// Emotion is empty only in the initial state or right after a reset;
	// once detected it survives across turns until overwritten, so the
	// recommendation step can read it after the machine has advanced.
	Emotion    string  `json:"emotion,omitempty"`
	Confidence float64 `json:"confidence"`

	EmotionsDiscussed   []string  `json:"emotions_discussed,omitempty"`
	FragrancesSuggested []string  `json:"fragrances_suggested,omitempty"`
	StartedAt           time.Time `json:"started_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func NewSession(sessionID, userID string) *Session {
	now := time.Now()
	return &Session{
		SessionID: sessionID,
		UserID:    userID,
		State:     StateGreeting,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Reset puts the session back to the initial state, clearing the detected
// emotion. Identity and history fields survive.
func (s *Session) Reset() {
	s.State = StateGreeting
	s.Emotion = ""
	s.Confidence = 0
}
