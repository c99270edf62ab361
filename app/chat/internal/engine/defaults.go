package engine

import (
	"EmotionAI/app/chat/internal/engine/arbiter"
	"EmotionAI/app/chat/internal/engine/lexicon"
)

// Default tuning. The lexicons carry both accented and unaccented spellings
// because users type Vietnamese with and without diacritics.
const (
	DefaultEmotionNorm = 3
	DefaultIntentNorm  = 2
	DefaultThreshold   = 0.3
)

func DefaultEmotionCategories() []lexicon.Category {
	return []lexicon.Category{
		{
			Name: arbiter.EmotionPositive,
			Keywords: []string{
				"vui", "vui ve", "vui lam", "hanh phuc", "hạnh phúc", "phấn khích", "tu hao", "biết ơn", "yêu đời",
				"năng động", "tuyệt vời", "thích", "rất vui", "cực vui", "siêu vui", "sung sướng", "thỏa mãn",
				"tốt", "hay", "đẹp", "thú vị", "tuyệt", "hoàn hảo", "xuất sắc", "ấn tượng",
			},
		},
		{
			Name: arbiter.EmotionNegative,
			Keywords: []string{
				"buồn", "buon", "mệt", "chán", "lo lắng", "tức", "hờn", "stress", "căng thẳng", "sợ hãi", "cô đơn", "tuyệt vọng",
				"khó khăn", "mất mát", "rất buồn", "xấu", "tệ", "khó chịu", "bực mình", "vất vả", "mệt mỏi",
				"bồn chồn", "hồi hộp", "sợ",
			},
		},
		{
			Name: arbiter.EmotionNeutral,
			Keywords: []string{
				"bình thường", "ổn định", "không biết", "không chắc", "bình yên", "tĩnh lặng", "ổn", "tạm được", "không sao",
			},
		},
	}
}

// DefaultEmotionOverrides are the documented literal short-circuits: a
// truncated "stress" reads negative, and "I don't know / not sure" reads
// neutral instead of scoring.
func DefaultEmotionOverrides() []lexicon.Override {
	return []lexicon.Override{
		{Contains: "stre", Category: arbiter.EmotionNegative, Confidence: 0.5},
		{Contains: "không biết", Category: arbiter.EmotionNeutral, Confidence: 0.5},
		{Contains: "khong biet", Category: arbiter.EmotionNeutral, Confidence: 0.5},
		{Contains: "không chắc", Category: arbiter.EmotionNeutral, Confidence: 0.5},
		{Contains: "khong chac", Category: arbiter.EmotionNeutral, Confidence: 0.5},
	}
}

func DefaultIntentCategories() []lexicon.Category {
	return []lexicon.Category{
		{
			Name: arbiter.IntentAgreement,
			Keywords: []string{
				"có", "co", "được", "duoc", "ok", "okay", "yes", "y", "tiếp tục", "tiep tuc",
				"muốn", "muon", "thích", "thich", "đồng ý", "dong y", "tán thành", "tan thanh",
				"chắc chắn", "chac chan", "tất nhiên", "tat nhien", "dĩ nhiên", "di nhien",
			},
		},
		{
			Name: arbiter.IntentDisagreement,
			Keywords: []string{
				"không", "khong", "no", "không muốn", "khong muon", "không thích", "khong thich",
				"không đồng ý", "khong dong y", "không phải", "khong phai", "không phải vậy", "khong phai vay",
				"không đúng", "khong dung", "sai rồi", "sai roi", "không phải thế", "khong phai the",
			},
		},
		{
			Name: arbiter.IntentEnd,
			Keywords: []string{
				"tạm biệt", "tam biet", "bye", "goodbye", "kết thúc", "ket thuc", "thôi", "thoi",
				"dừng lại", "dung lai", "ngừng", "ngung", "chấm dứt", "cham dut",
			},
		},
		{
			Name: arbiter.IntentRestart,
			Keywords: []string{
				"bắt đầu lại", "bat dau lai", "restart", "bắt đầu", "bat dau", "mới", "moi", "lại từ đầu", "lai tu dau",
				"làm lại", "lam lai", "thử lại", "thu lai", "bắt đầu mới", "bat dau moi",
			},
		},
		{
			Name: arbiter.IntentQuestion,
			Keywords: []string{
				"gì", "gi", "sao", "thế nào", "the nao", "làm sao", "lam sao", "cách", "cach",
				"thế", "the", "vậy", "vay", "sao vậy", "sao vay", "tại sao", "tai sao",
				"như thế nào", "nhu the nao", "làm thế nào", "lam the nao",
			},
		},
	}
}

// DefaultIntentOverrides: "không biết" is a neutral feeling, not an intent,
// and a bare "vậy" is a question particle rather than agreement.
func DefaultIntentOverrides() []lexicon.Override {
	return []lexicon.Override{
		{Contains: "không biết"},
		{Exact: "vậy", Category: arbiter.IntentQuestion, Confidence: 0.5},
	}
}

// DefaultIntentExclusions: "tôi" (I) contains the letters of the stop word
// "thoi" one deletion away, so end keywords must not score in first-person
// sentences.
func DefaultIntentExclusions() []lexicon.Exclusion {
	return []lexicon.Exclusion{
		{Keyword: "thôi", WhenContains: "tôi"},
		{Keyword: "thoi", WhenContains: "tôi"},
	}
}

// DefaultConfig is the tuning shipped with the service; every part of it can
// be overridden from YAML.
func DefaultConfig() Config {
	return Config{
		Emotion: lexicon.Config{
			Categories: DefaultEmotionCategories(),
			Norm:       DefaultEmotionNorm,
			Overrides:  DefaultEmotionOverrides(),
		},
		Intent: lexicon.Config{
			Categories: DefaultIntentCategories(),
			Norm:       DefaultIntentNorm,
			Overrides:  DefaultIntentOverrides(),
			Exclusions: DefaultIntentExclusions(),
		},
		Arbiter: arbiter.Config{
			FirstPerson: "tôi",
			Threshold:   DefaultThreshold,
		},
	}
}
