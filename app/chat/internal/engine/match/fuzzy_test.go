package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchExactSubstring(t *testing.T) {
	assert.True(t, Match("vui", "hôm nay tôi vui lắm"))
	assert.True(t, Match("VUI", "tôi vui"))
	assert.False(t, Match("vui", "tôi buồn"))
}

func TestMatchSingleDeletion(t *testing.T) {
	// last character dropped in the text
	assert.True(t, Match("stress", "toi dang bi stres qua"))
	// first character dropped
	assert.True(t, Match("buồn", "uồn quá"))
	// interior deletion, rune-safe for accented words
	assert.True(t, Match("hạnh phúc", "hạnh phú hôm nay"))
}

func TestMatchShortKeywordsAreStrict(t *testing.T) {
	// below 4 runes no deletion variants are tried
	assert.False(t, Match("met", "mt"))
	assert.False(t, Match("ok", "o"))
}

func TestMatchPrefixRule(t *testing.T) {
	assert.True(t, Match("tạm", "tạm biệt nhé"))
	assert.False(t, Match("biệt", "tạm"))
}

func TestMatchEmptyKeyword(t *testing.T) {
	assert.False(t, Match("", "bất kỳ"))
	assert.False(t, Match("", ""))
}
