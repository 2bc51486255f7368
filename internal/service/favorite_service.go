package service

import (
	"fmt"

	"go.uber.org/zap"

	"smartmeal/internal/models"
	"smartmeal/internal/repository"
)

// FavoriteService manages a session's saved favorites.
type FavoriteService struct {
	catalog *repository.CatalogRepository
	logger  *zap.Logger
}

func NewFavoriteService(catalog *repository.CatalogRepository, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		catalog: catalog,
		logger:  logger,
	}
}

// Save validates and stores a favorite, replacing an earlier save of the
// same recipe. The sighting also lands in the shared catalog.
func (s *FavoriteService) Save(sess *repository.Session, recipe models.Recipe) (models.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		return models.Recipe{}, err
	}
	recipe.Title = cleanDisplayString(recipe.Title)

	s.catalog.Upsert(recipe)
	sess.Favorites.Add(recipe)

	s.logger.Info("favorite saved",
		zap.String("session_id", sess.ID.String()),
		zap.String("recipe_id", recipe.ID),
	)
	return recipe, nil
}

// Remove deletes a favorite.
func (s *FavoriteService) Remove(sess *repository.Session, id string) error {
	if !sess.Favorites.Remove(id) {
		return fmt.Errorf("favorite %q: %w", id, models.ErrNotFound)
	}
	s.logger.Info("favorite removed",
		zap.String("session_id", sess.ID.String()),
		zap.String("recipe_id", id),
	)
	return nil
}

// List returns the session's favorites in insertion order.
func (s *FavoriteService) List(sess *repository.Session) []models.Recipe {
	return sess.Favorites.List()
}
