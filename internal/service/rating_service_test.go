package service

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartmeal/internal/models"
	"smartmeal/internal/repository"
)

func newTestSession() *repository.Session {
	return repository.NewSessionRepository(time.Hour, zap.NewNop()).GetOrCreate(uuid.Nil)
}

func pastaRecipe() models.Recipe {
	return models.Recipe{
		ID:        "716429",
		Title:     "Pasta with Garlic",
		Calories:  584,
		BasePrice: 12.5,
		ProteinG:  19,
		FatG:      20,
		CarbsG:    83,
	}
}

func TestRecordRating(t *testing.T) {
	catalog := repository.NewCatalogRepository(zap.NewNop())
	svc := NewRatingService(catalog, zap.NewNop())
	sess := newTestSession()

	item, err := svc.RecordRating(sess, pastaRecipe(), 4.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5}, item.Ratings)

	// The sighting must reach the shared catalog too.
	cached, ok := catalog.Get("716429")
	require.True(t, ok)
	assert.Equal(t, "Pasta with Garlic", cached.Title)
}

func TestRecordRatingValidation(t *testing.T) {
	svc := NewRatingService(repository.NewCatalogRepository(zap.NewNop()), zap.NewNop())
	sess := newTestSession()

	tests := []struct {
		name   string
		mutate func(*models.Recipe, *float64)
	}{
		{"rating below scale", func(r *models.Recipe, rating *float64) { *rating = 0.5 }},
		{"rating above scale", func(r *models.Recipe, rating *float64) { *rating = 5.5 }},
		{"rating NaN", func(r *models.Recipe, rating *float64) { *rating = math.NaN() }},
		{"missing recipe id", func(r *models.Recipe, rating *float64) { r.ID = " " }},
		{"negative calories", func(r *models.Recipe, rating *float64) { r.Calories = -1 }},
		{"negative price", func(r *models.Recipe, rating *float64) { r.BasePrice = -0.01 }},
		{"infinite price", func(r *models.Recipe, rating *float64) { r.BasePrice = math.Inf(1) }},
		{"NaN protein", func(r *models.Recipe, rating *float64) { r.ProteinG = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := pastaRecipe()
			rating := 4.0
			tt.mutate(&recipe, &rating)

			_, err := svc.RecordRating(sess, recipe, rating)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}

	// Nothing invalid may have landed in the store.
	assert.Equal(t, 0, sess.Ratings.Len())
}

func TestRecordRatingCleansTitle(t *testing.T) {
	svc := NewRatingService(repository.NewCatalogRepository(zap.NewNop()), zap.NewNop())
	sess := newTestSession()

	recipe := pastaRecipe()
	recipe.Title = "  Pad\x00 Thai\xff\x01  "

	item, err := svc.RecordRating(sess, recipe, 4)
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai", item.Title)
}

func TestRecordRatingKeepsFirstSnapshot(t *testing.T) {
	svc := NewRatingService(repository.NewCatalogRepository(zap.NewNop()), zap.NewNop())
	sess := newTestSession()

	first := pastaRecipe()
	_, err := svc.RecordRating(sess, first, 5)
	require.NoError(t, err)

	changed := first
	changed.Title = "Totally Different"
	changed.BasePrice = 99
	_, err = svc.RecordRating(sess, changed, 3)
	require.NoError(t, err)

	history := svc.History(sess)
	require.Len(t, history, 1)
	assert.Equal(t, "Pasta with Garlic", history[0].Title)
	assert.Equal(t, 12.5, history[0].BasePrice)
	assert.Equal(t, []float64{5, 3}, history[0].Ratings)
}

func TestTimeline(t *testing.T) {
	svc := NewRatingService(repository.NewCatalogRepository(zap.NewNop()), zap.NewNop())
	sess := newTestSession()

	d1 := models.Recipe{ID: "d1", Title: "Ramen", Calories: 800, BasePrice: 10, ProteinG: 50}
	d2 := models.Recipe{ID: "d2", Title: "Salad", Calories: 100, BasePrice: 12, ProteinG: 5}
	for _, r := range []float64{4, 5} {
		_, err := svc.RecordRating(sess, d1, r)
		require.NoError(t, err)
	}
	_, err := svc.RecordRating(sess, d2, 3)
	require.NoError(t, err)

	entries := svc.Timeline(sess)
	require.Len(t, entries, 3)

	// One entry per rating event, dishes in insertion order, numbered 1..n.
	assert.Equal(t, []int{1, 2, 3},
		[]int{entries[0].MealNumber, entries[1].MealNumber, entries[2].MealNumber})
	assert.Equal(t, "d1", entries[0].RecipeID)
	assert.Equal(t, 4.0, entries[0].Rating)
	assert.Equal(t, 5.0, entries[1].Rating)
	assert.Equal(t, "d2", entries[2].RecipeID)

	// Price band is [10-0.5, 12+0.5], span 3.
	assert.InDelta(t, 1+4*0.5/3.0, entries[0].PriceScaled, 1e-9)
	assert.InDelta(t, 1+4*2.5/3.0, entries[2].PriceScaled, 1e-9)

	// 800 kcal is the middle of the fixed 100-1500 band; 100 is its floor.
	assert.InDelta(t, 3.0, entries[0].CaloriesScaled, 1e-9)
	assert.InDelta(t, 1.0, entries[2].CaloriesScaled, 1e-9)

	// 50 g protein is the middle of the fixed 0-100 band.
	assert.InDelta(t, 3.0, entries[0].ProteinScaled, 1e-9)
}

func TestTimelineSingleDish(t *testing.T) {
	svc := NewRatingService(repository.NewCatalogRepository(zap.NewNop()), zap.NewNop())
	sess := newTestSession()

	_, err := svc.RecordRating(sess, pastaRecipe(), 4)
	require.NoError(t, err)

	entries := svc.Timeline(sess)
	require.Len(t, entries, 1)

	// Padding keeps the price band usable with a single price: the one
	// dish sits exactly in the middle.
	assert.InDelta(t, 3.0, entries[0].PriceScaled, 1e-9)
}

func TestTimelineEmpty(t *testing.T) {
	svc := NewRatingService(repository.NewCatalogRepository(zap.NewNop()), zap.NewNop())
	assert.Empty(t, svc.Timeline(newTestSession()))
}
