package dialogue

import (
	"fmt"

	"EmotionAI/app/chat/internal/engine/arbiter"
)

// Bot copy. The bot speaks Vietnamese; texts are embedded here the same way
// the rest of the service embeds its user-facing strings.
const (
	greetingText = "Chào bạn! Tôi là EmotionAI – chatbot gợi ý mùi nến theo cảm xúc 💜\n\nBạn có thể chia sẻ cảm xúc hiện tại của mình không?"

	unknownContextText = "Xin lỗi, mình chưa rõ phần này 😅\n\nNhưng mình có thể tư vấn mùi nến phù hợp với cảm xúc của bạn.\nBạn có muốn thử không?"

	askFeelingText = "Bạn có thể chia sẻ cảm xúc hiện tại của mình không?\nVí dụ: 'tôi đang stress', 'hôm nay rất vui'..."

	emotionDetectedFmt = "Cảm xúc bạn đang chia sẻ là %s, mình rất đồng cảm ❤️\n\nBạn có muốn mình gợi ý mùi nến phù hợp với cảm xúc đó không?"

	suggestFragranceText = "Mình sẽ gợi ý mùi nến phù hợp với cảm xúc của bạn! 🕯️"

	askMoreText = "Tuyệt! Bạn có thể chia sẻ cảm xúc khác hoặc muốn tư vấn thêm không?"

	reassureShareText = "Không sao đâu! Bạn có thể chia sẻ bất cứ điều gì khác với mình 😊"

	reassureTalkText = "Không sao! Bạn có thể nói chuyện bình thường với mình 😊"

	reassureLaterText = "Không sao! Bạn có thể chia sẻ khi nào cảm thấy thoải mái hơn 😊"

	endSessionText = "Cảm ơn bạn đã trò chuyện cùng EmotionAI.\nNếu cần thêm tư vấn, mình luôn sẵn sàng 🌿"
)

var emotionNames = map[string]string{
	arbiter.EmotionPositive: "vui vẻ, tích cực",
	arbiter.EmotionNegative: "buồn, tiêu cực",
	arbiter.EmotionNeutral:  "bình thường, cân bằng",
}

func emotionName(category string) string {
	if name, ok := emotionNames[category]; ok {
		return name
	}
	return category
}

func emotionDetectedText(category string) string {
	return fmt.Sprintf(emotionDetectedFmt, emotionName(category))
}

// Quick-reply chips. Fresh slices every call so callers can append freely.

func greetingSuggestions() []string {
	return []string{"😊 Tôi vui", "😔 Tôi buồn", "😰 Tôi stress", "🤔 Không biết"}
}

func shareSuggestions() []string {
	return []string{"😊 Tôi vui", "😔 Tôi buồn", "😰 Tôi stress"}
}

func confirmSuggestions() []string {
	return []string{"Có", "Không", "Tạm biệt"}
}

func unknownContextSuggestions() []string {
	return []string{"Có", "Không", "🤔 Không biết"}
}

func continueSuggestions() []string {
	return []string{"Tiếp tục", "Tạm biệt"}
}

func moreFeelingSuggestions() []string {
	return []string{"😊 Tôi vui", "😔 Tôi buồn", "😰 Tôi stress", "Tạm biệt"}
}

func restartSuggestions() []string {
	return []string{"Bắt đầu lại"}
}
