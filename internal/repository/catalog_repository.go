package repository

import (
	"sync"

	"go.uber.org/zap"

	"smartmeal/internal/models"
)

// CatalogRepository caches every recipe the service has seen, across all
// sessions. It backs the similar-dish lookups; scoring never reads it.
// Unlike the frozen snapshots inside rated items, the cache follows the
// newest sighting of each recipe, so later metadata wins.
type CatalogRepository struct {
	mu     sync.RWMutex
	byID   map[string]models.Recipe
	order  []string
	logger *zap.Logger
}

func NewCatalogRepository(logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		byID:   make(map[string]models.Recipe),
		logger: logger,
	}
}

// Upsert records the latest metadata sighting for a recipe.
func (r *CatalogRepository) Upsert(recipe models.Recipe) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[recipe.ID]; !ok {
		r.order = append(r.order, recipe.ID)
		r.logger.Debug("catalog entry added",
			zap.String("recipe_id", recipe.ID),
			zap.Int("size", len(r.order)))
	}
	r.byID[recipe.ID] = recipe
}

// Get returns the cached metadata for one recipe.
func (r *CatalogRepository) Get(id string) (models.Recipe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipe, ok := r.byID[id]
	return recipe, ok
}

// All returns every cached recipe in first-seen order.
func (r *CatalogRepository) All() []models.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Recipe, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of cached recipes.
func (r *CatalogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
