package recommend

import (
	"context"
	"testing"

	fragrancedal "EmotionAI/app/dal/fragrance"
	userdal "EmotionAI/app/dal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	byId      map[int64]*fragrancedal.Fragrances
	byEmotion map[string][]*fragrancedal.Fragrances
}

func (f fakeCatalog) FindOne(_ context.Context, id int64) (*fragrancedal.Fragrances, error) {
	item, ok := f.byId[id]
	if !ok {
		return nil, fragrancedal.ErrNotFound
	}
	return item, nil
}

func (f fakeCatalog) ListByEmotion(_ context.Context, emotion string) ([]*fragrancedal.Fragrances, error) {
	return f.byEmotion[emotion], nil
}

type fakePreferences struct {
	liked []*userdal.UserPreferences
}

func (f fakePreferences) ListLiked(_ context.Context, _, _ string, _ int64) ([]*userdal.UserPreferences, error) {
	return f.liked, nil
}

func testCatalog() fakeCatalog {
	lavender := &fragrancedal.Fragrances{Id: 1, Name: "Lavender Dream", Emotion: "negative"}
	citrus := &fragrancedal.Fragrances{Id: 2, Name: "Citrus Morning", Emotion: "positive"}
	vanilla := &fragrancedal.Fragrances{Id: 3, Name: "Vanilla Cloud", Emotion: "positive"}
	return fakeCatalog{
		byId: map[int64]*fragrancedal.Fragrances{1: lavender, 2: citrus, 3: vanilla},
		byEmotion: map[string][]*fragrancedal.Fragrances{
			"negative": {lavender},
			"positive": {citrus, vanilla},
		},
	}
}

func TestSuggestPrefersLikedFragrance(t *testing.T) {
	r := NewRecommender(testCatalog(), fakePreferences{
		liked: []*userdal.UserPreferences{{FragranceId: 3, Rating: 5}},
	})

	got, err := r.Suggest(context.Background(), "u1", "positive")
	require.NoError(t, err)
	assert.True(t, got.Personalized)
	assert.Equal(t, int64(3), got.Fragrance.Id)
}

func TestSuggestSkipsVanishedPreference(t *testing.T) {
	r := NewRecommender(testCatalog(), fakePreferences{
		liked: []*userdal.UserPreferences{{FragranceId: 99, Rating: 5}},
	})
	r.pick = func(int) int { return 0 }

	got, err := r.Suggest(context.Background(), "u1", "positive")
	require.NoError(t, err)
	assert.False(t, got.Personalized)
	assert.Equal(t, int64(2), got.Fragrance.Id)
}

func TestSuggestFallsBackToCatalog(t *testing.T) {
	r := NewRecommender(testCatalog(), fakePreferences{})
	r.pick = func(n int) int { return n - 1 }

	got, err := r.Suggest(context.Background(), "u1", "positive")
	require.NoError(t, err)
	assert.False(t, got.Personalized)
	assert.Equal(t, int64(3), got.Fragrance.Id)
}

func TestSuggestUnknownEmotion(t *testing.T) {
	r := NewRecommender(testCatalog(), fakePreferences{})
	_, err := r.Suggest(context.Background(), "u1", "melancholy")
	assert.ErrorIs(t, err, fragrancedal.ErrNotFound)
}

func TestSuggestAnonymousUserSkipsPreferences(t *testing.T) {
	r := NewRecommender(testCatalog(), fakePreferences{
		liked: []*userdal.UserPreferences{{FragranceId: 1, Rating: 5}},
	})
	r.pick = func(int) int { return 0 }

	got, err := r.Suggest(context.Background(), "", "negative")
	require.NoError(t, err)
	assert.False(t, got.Personalized)
}
