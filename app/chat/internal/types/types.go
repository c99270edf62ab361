// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	UserId  string `json:"user_id,optional"`
	Message string `json:"message"`
}

type FragranceInfo struct {
	FragranceId int64   `json:"fragrance_id"`
	Name        string  `json:"name"`
	Emotion     string  `json:"emotion"`
	Description string  `json:"description,omitempty"`
	ScentNotes  string  `json:"scent_notes,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageUrl    string  `json:"image_url,omitempty"`
}

type ChatResponse struct {
	StatusCode   int64          `json:"status_code"`
	StatusMsg    string         `json:"status_msg"`
	SessionId    string         `json:"session_id"`
	Response     string         `json:"response"`
	State        string         `json:"state"`
	PrevState    string         `json:"prev_state"`
	Suggestions  []string       `json:"suggestions"`
	Emotion      string         `json:"emotion,omitempty"`
	Confidence   float64        `json:"confidence,omitempty"`
	Fragrance    *FragranceInfo `json:"fragrance,omitempty"`
	Personalized bool           `json:"personalized,omitempty"`
}

type SessionStateRequest struct {
	UserId string `form:"user_id"`
}

type SessionStateResponse struct {
	StatusCode        int64    `json:"status_code"`
	StatusMsg         string   `json:"status_msg"`
	SessionId         string   `json:"session_id"`
	State             string   `json:"state"`
	Emotion           string   `json:"emotion,omitempty"`
	Confidence        float64  `json:"confidence,omitempty"`
	EmotionsDiscussed []string `json:"emotions_discussed"`
}

type ResetSessionRequest struct {
	UserId string `json:"user_id"`
}

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	StatusCode        int64   `json:"status_code"`
	StatusMsg         string  `json:"status_msg"`
	Type              string  `json:"type"`
	Emotion           string  `json:"emotion,omitempty"`
	EmotionConfidence float64 `json:"emotion_confidence"`
	Intent            string  `json:"intent,omitempty"`
	IntentConfidence  float64 `json:"intent_confidence"`
}

type ListFragrancesResponse struct {
	StatusCode int64           `json:"status_code"`
	StatusMsg  string          `json:"status_msg"`
	Fragrances []FragranceInfo `json:"fragrances"`
}

type GetFragranceRequest struct {
	Emotion string `path:"emotion"`
}

type AddFragranceRequest struct {
	Name        string  `json:"name"`
	Emotion     string  `json:"emotion"`
	Description string  `json:"description,optional"`
	ScentNotes  string  `json:"scent_notes,optional"`
	Price       float64 `json:"price,optional"`
	ImageUrl    string  `json:"image_url,optional"`
}

type AddFragranceResponse struct {
	StatusCode  int64  `json:"status_code"`
	StatusMsg   string `json:"status_msg"`
	FragranceId int64  `json:"fragrance_id"`
}

type UserPathRequest struct {
	UserId string `path:"user_id"`
}

type TurnInfo struct {
	Message    string  `json:"message"`
	Response   string  `json:"response"`
	Emotion    string  `json:"emotion,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	State      string  `json:"state"`
	CreatedAt  string  `json:"created_at"`
}

type UserStatsResponse struct {
	StatusCode      int64            `json:"status_code"`
	StatusMsg       string           `json:"status_msg"`
	UserId          string           `json:"user_id"`
	TotalMessages   int64            `json:"total_messages"`
	EmotionCounts   map[string]int64 `json:"emotion_counts"`
	DominantEmotion string           `json:"dominant_emotion,omitempty"`
	RecentMessages  []TurnInfo       `json:"recent_messages"`
}

type PreferenceInfo struct {
	Emotion       string `json:"emotion"`
	FragranceId   int64  `json:"fragrance_id"`
	FragranceName string `json:"fragrance_name,omitempty"`
	Rating        int64  `json:"rating"`
	CreatedAt     string `json:"created_at"`
}

type UserPreferencesResponse struct {
	StatusCode  int64            `json:"status_code"`
	StatusMsg   string           `json:"status_msg"`
	UserId      string           `json:"user_id"`
	Preferences []PreferenceInfo `json:"preferences"`
}

type EmotionStatInfo struct {
	Emotion       string  `json:"emotion"`
	Total         int64   `json:"total"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type AnalyticsResponse struct {
	StatusCode         int64             `json:"status_code"`
	StatusMsg          string            `json:"status_msg"`
	TotalUsers         int64             `json:"total_users"`
	TotalSessions      int64             `json:"total_sessions"`
	TotalConversations int64             `json:"total_conversations"`
	EmotionStats       []EmotionStatInfo `json:"emotion_stats"`
}
