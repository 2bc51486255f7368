package repository

import (
	"sync"
	"time"

	"smartmeal/internal/models"
)

// RatingStore holds one session's rated dishes, keyed by recipe id with
// explicit insertion order. Scoring passes and ranking responses follow
// that order, never map iteration order, so results are deterministic.
type RatingStore struct {
	mu    sync.RWMutex
	items map[string]*models.RatedItem
	order []string
}

func NewRatingStore() *RatingStore {
	return &RatingStore{items: make(map[string]*models.RatedItem)}
}

// Upsert appends a rating to the dish's history, creating the entry with
// the given metadata snapshot if this is the dish's first rating. Create
// and append happen under one lock, so two concurrent first ratings cannot
// produce two entries. Metadata on later calls is ignored: the snapshot is
// frozen when the dish enters the store.
func (s *RatingStore) Upsert(recipe models.Recipe, rating float64) *models.RatedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[recipe.ID]
	if !ok {
		item = &models.RatedItem{Recipe: recipe, CreatedAt: time.Now()}
		s.items[recipe.ID] = item
		s.order = append(s.order, recipe.ID)
	}
	item.Ratings = append(item.Ratings, rating)
	return item.Clone()
}

// Get returns a copy of one rated dish.
func (s *RatingStore) Get(id string) (*models.RatedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// Snapshot returns deep copies of every rated dish in insertion order. A
// scoring pass runs entirely on its snapshot and never observes an append
// that lands while it is computing.
func (s *RatingStore) Snapshot() []*models.RatedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.RatedItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out
}

// Len returns the number of distinct rated dishes.
func (s *RatingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
