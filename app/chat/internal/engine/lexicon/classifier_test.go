package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Categories: []Category{
			{Name: "alpha", Keywords: []string{"mango", "kiwi"}},
			{Name: "beta", Keywords: []string{"grape", "melon"}},
		},
		Norm: 2,
	}
}

func TestClassifierValidation(t *testing.T) {
	_, err := NewClassifier(Config{Norm: 2})
	assert.Error(t, err)

	_, err = NewClassifier(Config{
		Categories: []Category{{Name: "a", Keywords: []string{"x"}}},
	})
	assert.Error(t, err, "norm must be positive")

	_, err = NewClassifier(Config{
		Categories: []Category{
			{Name: "a", Keywords: []string{"x"}},
			{Name: "a", Keywords: []string{"y"}},
		},
		Norm: 1,
	})
	assert.Error(t, err, "duplicate category names rejected")

	_, err = NewClassifier(testConfig())
	assert.NoError(t, err)
}

func TestClassifyEmptyInput(t *testing.T) {
	c := MustNewClassifier(testConfig())
	assert.Equal(t, Result{}, c.Classify(""))
	assert.Equal(t, Result{}, c.Classify("   "))
	assert.Equal(t, Result{}, c.Classify("???!!!"))
}

func TestClassifyScoring(t *testing.T) {
	c := MustNewClassifier(testConfig())

	res := c.Classify("I ate a mango today")
	assert.Equal(t, "alpha", res.Category)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)

	res = c.Classify("mango and kiwi smoothie")
	assert.Equal(t, "alpha", res.Category)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestClassifyConfidenceCapped(t *testing.T) {
	c := MustNewClassifier(Config{
		Categories: []Category{
			{Name: "alpha", Keywords: []string{"mango", "kiwi", "grape"}},
		},
		Norm: 2,
	})
	res := c.Classify("mango kiwi grape")
	assert.Equal(t, "alpha", res.Category)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9, "confidence never exceeds 1")
}

func TestClassifyTieBreakFirstDeclared(t *testing.T) {
	c := MustNewClassifier(testConfig())
	// one hit each; alpha is declared first and must win the tie
	res := c.Classify("mango with melon")
	assert.Equal(t, "alpha", res.Category)
}

func TestClassifyDeterministic(t *testing.T) {
	c := MustNewClassifier(testConfig())
	first := c.Classify("kiwi grape melon mango")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify("kiwi grape melon mango"))
	}
}

func TestClassifyNormalization(t *testing.T) {
	c := MustNewClassifier(testConfig())
	res := c.Classify("MANGO!!!")
	assert.Equal(t, "alpha", res.Category)
}

func TestClassifyOverridePrecedence(t *testing.T) {
	cfg := testConfig()
	cfg.Overrides = []Override{
		{Exact: "mango", Category: "beta", Confidence: 0.5},
		{Contains: "grape", Category: "alpha", Confidence: 0.9},
	}
	c := MustNewClassifier(cfg)

	// exact override fires before any scoring
	res := c.Classify("mango")
	assert.Equal(t, Result{Category: "beta", Confidence: 0.5}, res)

	// contains override beats the keyword score
	res = c.Classify("grape melon grape")
	assert.Equal(t, Result{Category: "alpha", Confidence: 0.9}, res)
}

func TestClassifyOverrideForcesNoResult(t *testing.T) {
	cfg := testConfig()
	cfg.Overrides = []Override{{Contains: "mango", Category: "", Confidence: 0}}
	c := MustNewClassifier(cfg)
	assert.Equal(t, Result{}, c.Classify("mango everywhere"))
}

func TestClassifyExclusion(t *testing.T) {
	cfg := testConfig()
	cfg.Exclusions = []Exclusion{{Keyword: "melon", WhenContains: "mango"}}
	c := MustNewClassifier(cfg)

	// melon suppressed when mango appears, so alpha wins outright
	res := c.Classify("mango melon")
	assert.Equal(t, "alpha", res.Category)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)

	// without mango the exclusion is inert
	res = c.Classify("melon juice")
	assert.Equal(t, "beta", res.Category)
}

func TestClassifyFuzzyHit(t *testing.T) {
	c := MustNewClassifier(testConfig())
	// single-character deletion of "mango" still matches
	res := c.Classify("mago for breakfast")
	require.Equal(t, "alpha", res.Category)
}
