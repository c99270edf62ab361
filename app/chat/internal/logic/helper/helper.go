package helper

import (
	"time"

	"EmotionAI/app/chat/internal/types"
	conversationdal "EmotionAI/app/dal/conversation"
	fragrancedal "EmotionAI/app/dal/fragrance"
	userdal "EmotionAI/app/dal/user"
)

func ToFragranceInfo(src *fragrancedal.Fragrances) types.FragranceInfo {
	if src == nil {
		return types.FragranceInfo{}
	}
	return types.FragranceInfo{
		FragranceId: src.Id,
		Name:        src.Name,
		Emotion:     src.Emotion,
		Description: src.Description,
		ScentNotes:  src.ScentNotes,
		Price:       src.Price,
		ImageUrl:    src.ImageUrl,
	}
}

func ToPreferenceInfo(src *userdal.UserPreferences, fragranceName string) types.PreferenceInfo {
	if src == nil {
		return types.PreferenceInfo{}
	}
	return types.PreferenceInfo{
		Emotion:       src.Emotion,
		FragranceId:   src.FragranceId,
		FragranceName: fragranceName,
		Rating:        src.Rating,
		CreatedAt:     src.CreateTime.Format(time.RFC3339),
	}
}

func ToTurnInfo(src *conversationdal.Conversations) types.TurnInfo {
	if src == nil {
		return types.TurnInfo{}
	}
	return types.TurnInfo{
		Message:    src.Message,
		Response:   src.Response,
		Emotion:    src.Emotion,
		Confidence: src.Confidence,
		State:      src.State,
		CreatedAt:  src.CreateTime.Format(time.RFC3339),
	}
}

// FragranceReply appends the recommended fragrance to the bot reply.
func FragranceReply(base string, f *fragrancedal.Fragrances) string {
	reply := base + "\n\n🕯️ " + f.Name
	if f.Description != "" {
		reply += "\n" + f.Description
	}
	if f.ScentNotes != "" {
		reply += "\nHương chính: " + f.ScentNotes
	}
	return reply
}

// DominantEmotion picks the most frequent emotion from the counts, empty when
// there is nothing to pick.
func DominantEmotion(counts map[string]int64) string {
	var best string
	var bestCount int64
	for emotion, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || emotion < best)) {
			best = emotion
			bestCount = count
		}
	}
	return best
}
