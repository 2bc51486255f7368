package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartmeal/internal/models"
)

func TestRatingStoreUpsertCreatesThenAppends(t *testing.T) {
	s := NewRatingStore()

	first := s.Upsert(models.Recipe{ID: "r1", Title: "Lentil Curry", BasePrice: 9.5}, 4)
	require.NotNil(t, first)
	assert.Equal(t, []float64{4}, first.Ratings)
	assert.False(t, first.CreatedAt.IsZero())

	second := s.Upsert(models.Recipe{ID: "r1", Title: "Lentil Curry"}, 5)
	assert.Equal(t, []float64{4, 5}, second.Ratings)
	assert.Equal(t, 1, s.Len())
}

func TestRatingStoreSnapshotIsFrozenAtFirstRating(t *testing.T) {
	s := NewRatingStore()

	s.Upsert(models.Recipe{ID: "r1", Title: "Original", BasePrice: 10, Calories: 400}, 5)
	// The catalog may change; the rated item must not.
	s.Upsert(models.Recipe{ID: "r1", Title: "Renamed", BasePrice: 99, Calories: 1}, 3)

	item, ok := s.Get("r1")
	require.True(t, ok)
	assert.Equal(t, "Original", item.Title)
	assert.Equal(t, 10.0, item.BasePrice)
	assert.Equal(t, 400.0, item.Calories)
	assert.Equal(t, []float64{5, 3}, item.Ratings)
}

func TestRatingStoreSnapshotKeepsInsertionOrder(t *testing.T) {
	s := NewRatingStore()

	ids := []string{"carbonara", "ramen", "salad", "tagine", "pho"}
	for i, id := range ids {
		s.Upsert(models.Recipe{ID: id}, float64(1+i%5))
	}
	// Extra ratings on earlier dishes must not reorder anything.
	s.Upsert(models.Recipe{ID: "salad"}, 2)
	s.Upsert(models.Recipe{ID: "carbonara"}, 5)

	snap := s.Snapshot()
	require.Len(t, snap, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, snap[i].ID)
	}
}

func TestRatingStoreReturnsCopies(t *testing.T) {
	s := NewRatingStore()
	s.Upsert(models.Recipe{ID: "r1", Title: "Gnocchi"}, 3)

	item, ok := s.Get("r1")
	require.True(t, ok)
	item.Title = "mutated"
	item.Ratings[0] = 1
	item.Ratings = append(item.Ratings, 1, 1)

	fresh, ok := s.Get("r1")
	require.True(t, ok)
	assert.Equal(t, "Gnocchi", fresh.Title)
	assert.Equal(t, []float64{3}, fresh.Ratings)
}

func TestRatingStoreGetMissing(t *testing.T) {
	s := NewRatingStore()
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestRatingStoreConcurrentUpserts(t *testing.T) {
	s := NewRatingStore()

	const workers = 32
	const perWorker = 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Upsert(models.Recipe{ID: "shared"}, float64(1+w%5))
				s.Upsert(models.Recipe{ID: fmt.Sprintf("own-%d", w)}, 3)
			}
		}(w)
	}
	wg.Wait()

	item, ok := s.Get("shared")
	require.True(t, ok)
	assert.Len(t, item.Ratings, workers*perWorker)
	assert.Equal(t, 1+workers, s.Len())
}

func TestFavoriteStoreAddRemoveList(t *testing.T) {
	s := NewFavoriteStore()

	s.Add(models.Recipe{ID: "a", Title: "Bibimbap"})
	s.Add(models.Recipe{ID: "b", Title: "Falafel"})
	s.Add(models.Recipe{ID: "a", Title: "Bibimbap Deluxe"})

	list := s.List()
	require.Len(t, list, 2)
	// Re-adding replaces metadata but keeps the original position.
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "Bibimbap Deluxe", list[0].Title)
	assert.Equal(t, "b", list[1].ID)

	assert.True(t, s.Has("a"))
	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.False(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())
}
