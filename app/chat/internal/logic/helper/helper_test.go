package helper

import (
	"testing"
	"time"

	conversationdal "EmotionAI/app/dal/conversation"
	fragrancedal "EmotionAI/app/dal/fragrance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTurnInfo(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	info := ToTurnInfo(&conversationdal.Conversations{
		Message:    "tôi đang vui",
		Response:   "Thật tuyệt!",
		Emotion:    "positive",
		Confidence: 0.67,
		State:      "emotion_detected",
		CreateTime: created,
	})

	assert.Equal(t, "tôi đang vui", info.Message)
	assert.Equal(t, "positive", info.Emotion)
	assert.Equal(t, created.Format(time.RFC3339), info.CreatedAt)

	assert.Zero(t, ToTurnInfo(nil))
}

func TestFragranceReply(t *testing.T) {
	full := FragranceReply("Mình gợi ý nhé:", &fragrancedal.Fragrances{
		Name:        "Lavender Dreams",
		Description: "Thư giãn sau ngày dài",
		ScentNotes:  "oải hương, gỗ đàn hương",
	})
	require.Contains(t, full, "🕯️ Lavender Dreams")
	require.Contains(t, full, "Thư giãn sau ngày dài")
	require.Contains(t, full, "Hương chính: oải hương, gỗ đàn hương")

	bare := FragranceReply("Gợi ý:", &fragrancedal.Fragrances{Name: "Citrus Morning"})
	assert.Equal(t, "Gợi ý:\n\n🕯️ Citrus Morning", bare)
}

func TestDominantEmotion(t *testing.T) {
	assert.Empty(t, DominantEmotion(nil))
	assert.Equal(t, "negative", DominantEmotion(map[string]int64{
		"positive": 2,
		"negative": 5,
		"neutral":  1,
	}))
	// Ties resolve the same way every call.
	assert.Equal(t, "negative", DominantEmotion(map[string]int64{
		"positive": 3,
		"negative": 3,
	}))
}
