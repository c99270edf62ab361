package mq

const TaskExpireSession = "chat:expire_session"

type ExpireSessionPayload struct {
	SessionId string `json:"session_id"`
	UserId    string `json:"user_id"`
}

// TurnEvent is published after every processed chat turn for downstream
// analytics consumers.
type TurnEvent struct {
	SessionId  string  `json:"session_id"`
	UserId     string  `json:"user_id"`
	Message    string  `json:"message"`
	Response   string  `json:"response"`
	Emotion    string  `json:"emotion,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	PrevState  string  `json:"prev_state"`
	State      string  `json:"state"`
	Timestamp  int64   `json:"timestamp"`
}
