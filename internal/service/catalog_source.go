package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"smartmeal/internal/models"
	"smartmeal/internal/repository"
)

// CatalogSource answers similarity lookups from the in-process catalog
// cache: the nearest other dishes by calories and price. It stands in
// for a remote similar-recipe API and only knows dishes the service has
// already seen, which keeps suggestions self-contained.
type CatalogSource struct {
	catalog *repository.CatalogRepository
}

func NewCatalogSource(catalog *repository.CatalogRepository) *CatalogSource {
	return &CatalogSource{catalog: catalog}
}

// Similar ranks every other cached dish by nutritional distance to the
// seed. Ranking is stable over the catalog's first-seen order, so equal
// distances resolve the same way on every call.
func (s *CatalogSource) Similar(ctx context.Context, seedID string, limit int) ([]string, error) {
	seed, ok := s.catalog.Get(seedID)
	if !ok {
		return nil, fmt.Errorf("seed recipe %q: %w", seedID, models.ErrNotFound)
	}

	type candidate struct {
		id   string
		dist float64
	}
	var candidates []candidate
	for _, r := range s.catalog.All() {
		if r.ID == seedID {
			continue
		}
		candidates = append(candidates, candidate{id: r.ID, dist: nutritionalDistance(seed, r)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids, nil
}

// Info returns the cached metadata for one dish.
func (s *CatalogSource) Info(ctx context.Context, id string) (*models.Recipe, error) {
	r, ok := s.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("recipe %q is not in the catalog: %w", id, models.ErrNotFound)
	}
	return &r, nil
}

// nutritionalDistance sums the relative calorie and price gaps between
// two dishes, each gap scaled by the larger magnitude so neither axis
// dominates just because its unit is bigger.
func nutritionalDistance(a, b models.Recipe) float64 {
	return relativeGap(a.Calories, b.Calories) + relativeGap(a.BasePrice, b.BasePrice)
}

func relativeGap(a, b float64) float64 {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return 0
	}
	return math.Abs(a-b) / scale
}
