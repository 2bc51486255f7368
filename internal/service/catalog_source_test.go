package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartmeal/internal/models"
	"smartmeal/internal/repository"
)

func TestCatalogSourceSimilarRanksByProximity(t *testing.T) {
	catalog := repository.NewCatalogRepository(zap.NewNop())
	catalog.Upsert(models.Recipe{ID: "seed", Calories: 500, BasePrice: 10})
	catalog.Upsert(models.Recipe{ID: "far", Calories: 1200, BasePrice: 25})
	catalog.Upsert(models.Recipe{ID: "near", Calories: 520, BasePrice: 10.5})
	catalog.Upsert(models.Recipe{ID: "mid", Calories: 700, BasePrice: 12})

	source := NewCatalogSource(catalog)
	ids, err := source.Similar(context.Background(), "seed", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"near", "mid", "far"}, ids)
}

func TestCatalogSourceSimilarLimit(t *testing.T) {
	catalog := repository.NewCatalogRepository(zap.NewNop())
	catalog.Upsert(models.Recipe{ID: "seed", Calories: 500, BasePrice: 10})
	for _, r := range []models.Recipe{
		{ID: "a", Calories: 510, BasePrice: 10},
		{ID: "b", Calories: 550, BasePrice: 11},
		{ID: "c", Calories: 900, BasePrice: 18},
	} {
		catalog.Upsert(r)
	}

	source := NewCatalogSource(catalog)
	ids, err := source.Similar(context.Background(), "seed", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestCatalogSourceSimilarUnknownSeed(t *testing.T) {
	source := NewCatalogSource(repository.NewCatalogRepository(zap.NewNop()))

	_, err := source.Similar(context.Background(), "ghost", 6)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCatalogSourceInfo(t *testing.T) {
	catalog := repository.NewCatalogRepository(zap.NewNop())
	catalog.Upsert(models.Recipe{ID: "r1", Title: "Shakshuka"})

	source := NewCatalogSource(catalog)
	info, err := source.Info(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", info.Title)

	_, err = source.Info(context.Background(), "r2")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
