// Package recommend maps a detected emotion to a fragrance from the catalog,
// preferring items the user has rated well before falling back to a random
// catalog pick for that emotion.
package recommend

import (
	"context"
	"math/rand"

	fragrancedal "EmotionAI/app/dal/fragrance"
	userdal "EmotionAI/app/dal/user"
)

// MinLikedRating is the rating floor for a past preference to count as liked.
const MinLikedRating = 3

type Catalog interface {
	FindOne(ctx context.Context, id int64) (*fragrancedal.Fragrances, error)
	ListByEmotion(ctx context.Context, emotion string) ([]*fragrancedal.Fragrances, error)
}

type Preferences interface {
	ListLiked(ctx context.Context, userId, emotion string, minRating int64) ([]*userdal.UserPreferences, error)
}

// Suggestion is one recommendation. Personalized reports whether it came from
// the user's own rating history rather than the shared catalog.
type Suggestion struct {
	Fragrance    *fragrancedal.Fragrances
	Personalized bool
}

type Recommender struct {
	catalog     Catalog
	preferences Preferences
	pick        func(n int) int
}

func NewRecommender(catalog Catalog, preferences Preferences) *Recommender {
	return &Recommender{
		catalog:     catalog,
		preferences: preferences,
		pick:        rand.Intn,
	}
}

// Suggest returns a fragrance for the emotion. A liked past preference wins;
// otherwise one of the catalog entries for the emotion is chosen at random.
// ErrNotFound from the catalog means the emotion has no entries.
func (r *Recommender) Suggest(ctx context.Context, userID, emotion string) (*Suggestion, error) {
	if r.preferences != nil && userID != "" {
		liked, err := r.preferences.ListLiked(ctx, userID, emotion, MinLikedRating)
		if err != nil && err != userdal.ErrNotFound {
			return nil, err
		}
		for _, pref := range liked {
			item, err := r.catalog.FindOne(ctx, pref.FragranceId)
			if err == fragrancedal.ErrNotFound {
				// the rated fragrance left the catalog, try the next one
				continue
			}
			if err != nil {
				return nil, err
			}
			return &Suggestion{Fragrance: item, Personalized: true}, nil
		}
	}

	items, err := r.catalog.ListByEmotion(ctx, emotion)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fragrancedal.ErrNotFound
	}
	return &Suggestion{Fragrance: items[r.pick(len(items))]}, nil
}
