package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartmeal/internal/models"
)

func recipeFixture(id string) models.Recipe {
	return models.Recipe{
		ID:        id,
		Title:     "recipe " + id,
		Calories:  500,
		BasePrice: 10,
	}
}

func TestCatalogRepositoryLastWriteWins(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())

	c.Upsert(models.Recipe{ID: "r1", Title: "Old Name", Calories: 400})
	c.Upsert(models.Recipe{ID: "r1", Title: "New Name", Calories: 450})

	got, ok := c.Get("r1")
	require.True(t, ok)
	assert.Equal(t, "New Name", got.Title)
	assert.Equal(t, 450.0, got.Calories)
	assert.Equal(t, 1, c.Len())
}

func TestCatalogRepositoryAllKeepsFirstSeenOrder(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())

	c.Upsert(recipeFixture("a"))
	c.Upsert(recipeFixture("b"))
	c.Upsert(recipeFixture("c"))
	c.Upsert(recipeFixture("b"))

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestCatalogRepositoryGetMissing(t *testing.T) {
	c := NewCatalogRepository(zap.NewNop())
	_, ok := c.Get("ghost")
	assert.False(t, ok)
}
