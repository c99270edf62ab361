package lexicon

import (
	"fmt"
	"strings"

	"EmotionAI/app/chat/internal/engine/match"
)

// Category is one lexicon bucket. Declaration order matters: when two
// categories score the same, the earlier one wins.
type Category struct {
	Name     string
	Keywords []string
}

// Override short-circuits scoring for a known ambiguous input. Either Exact
// (whole trimmed normalized text) or Contains (substring of the normalized
// text) triggers it. An override with an empty Category forces "no result".
type Override struct {
	Exact      string
	Contains   string
	Category   string
	Confidence float64
}

// Exclusion suppresses one keyword whenever the text contains another
// string, e.g. "thôi" (stop) must not score inside "tôi" (I) sentences.
type Exclusion struct {
	Keyword      string
	WhenContains string
}

// Result carries the winning category and its normalized confidence.
// Category is empty when nothing matched. Confidence is a keyword-hit count
// scaled into [0,1]; it is only comparable within one classifier.
type Result struct {
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence"`
}

type Config struct {
	Categories []Category
	// Norm is the hit count at which confidence saturates to 1.0.
	Norm       float64
	Overrides  []Override
	Exclusions []Exclusion
}

// Classifier scores a fixed ordered set of categories against text using
// fuzzy keyword matching. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	categories []Category
	norm       float64
	overrides  []Override
	exclusions []Exclusion
}

func NewClassifier(c Config) (*Classifier, error) {
	if c.Norm <= 0 {
		return nil, fmt.Errorf("lexicon: norm constant must be positive, got %v", c.Norm)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("lexicon: at least one category is required")
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("lexicon: category with empty name")
		}
		if _, dup := seen[cat.Name]; dup {
			return nil, fmt.Errorf("lexicon: duplicate category %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}
		if len(cat.Keywords) == 0 {
			return nil, fmt.Errorf("lexicon: category %q has no keywords", cat.Name)
		}
		for _, kw := range cat.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("lexicon: category %q contains a blank keyword", cat.Name)
			}
		}
	}
	for _, o := range c.Overrides {
		if o.Exact == "" && o.Contains == "" {
			return nil, fmt.Errorf("lexicon: override without a trigger")
		}
		if o.Confidence < 0 || o.Confidence > 1 {
			return nil, fmt.Errorf("lexicon: override confidence %v out of range", o.Confidence)
		}
	}
	return &Classifier{
		categories: c.Categories,
		norm:       c.Norm,
		overrides:  c.Overrides,
		exclusions: c.Exclusions,
	}, nil
}

// MustNewClassifier panics on configuration errors. Misconfigured lexicons
// must fail at startup, never during a live conversation.
func MustNewClassifier(c Config) *Classifier {
	cls, err := NewClassifier(c)
	if err != nil {
		panic(err)
	}
	return cls
}

// Classify scores every category against the normalized text and returns the
// best one. The zero Result means no category matched. Pure for a fixed
// configuration.
func (c *Classifier) Classify(text string) Result {
	clean := Normalize(text)

	for _, o := range c.overrides {
		if o.Exact != "" && strings.TrimSpace(clean) == o.Exact {
			return Result{Category: o.Category, Confidence: o.Confidence}
		}
		if o.Contains != "" && strings.Contains(clean, o.Contains) {
			return Result{Category: o.Category, Confidence: o.Confidence}
		}
	}

	best := -1
	bestScore := 0
	for i, cat := range c.categories {
		score := 0
		for _, kw := range cat.Keywords {
			if c.excluded(kw, clean) {
				continue
			}
			if match.Match(kw, clean) {
				score++
			}
		}
		// strict > keeps the first-declared category on ties
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return Result{}
	}

	confidence := float64(bestScore) / c.norm
	if confidence > 1 {
		confidence = 1
	}
	return Result{Category: c.categories[best].Name, Confidence: confidence}
}

func (c *Classifier) excluded(keyword, clean string) bool {
	for _, e := range c.exclusions {
		if e.Keyword == keyword && strings.Contains(clean, e.WhenContains) {
			return true
		}
	}
	return false
}
