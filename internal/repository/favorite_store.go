package repository

import (
	"sync"

	"smartmeal/internal/models"
)

// FavoriteStore holds one session's saved favorites keyed by recipe id, in
// insertion order. Saving an id again replaces the stored metadata but
// keeps the original position.
type FavoriteStore struct {
	mu    sync.RWMutex
	items map[string]models.Recipe
	order []string
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{items: make(map[string]models.Recipe)}
}

// Add stores or replaces a favorite.
func (s *FavoriteStore) Add(recipe models.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[recipe.ID]; !ok {
		s.order = append(s.order, recipe.ID)
	}
	s.items[recipe.ID] = recipe
}

// Remove deletes a favorite and reports whether it existed.
func (s *FavoriteStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether the recipe id is a favorite.
func (s *FavoriteStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

// List returns the favorites in insertion order.
func (s *FavoriteStore) List() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Recipe, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len returns the number of favorites.
func (s *FavoriteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
