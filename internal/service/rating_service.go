package service

import (
	"go.uber.org/zap"

	"smartmeal/internal/dto"
	"smartmeal/internal/models"
	"smartmeal/internal/repository"
	"smartmeal/internal/scoring"
)

// RatingService records rating submissions and reports a session's rating
// history.
type RatingService struct {
	catalog *repository.CatalogRepository
	logger  *zap.Logger
}

func NewRatingService(catalog *repository.CatalogRepository, logger *zap.Logger) *RatingService {
	return &RatingService{
		catalog: catalog,
		logger:  logger,
	}
}

// RecordRating validates one submission and appends it to the session's
// history, snapshotting the recipe metadata if this is the dish's first
// rating. The sighting also lands in the shared catalog so the
// similar-dish source learns about the recipe.
func (s *RatingService) RecordRating(sess *repository.Session, recipe models.Recipe, rating float64) (*models.RatedItem, error) {
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	recipe.Title = cleanDisplayString(recipe.Title)

	s.catalog.Upsert(recipe)
	item := sess.Ratings.Upsert(recipe, rating)

	s.logger.Info("rating recorded",
		zap.String("session_id", sess.ID.String()),
		zap.String("recipe_id", recipe.ID),
		zap.Float64("rating", rating),
		zap.Int("ratings_total", len(item.Ratings)),
	)
	return item, nil
}

// History returns the session's rated dishes in insertion order.
func (s *RatingService) History(sess *repository.Session) []*models.RatedItem {
	return sess.Ratings.Snapshot()
}

// Timeline flattens the rating history into one entry per rating event,
// dishes in insertion order and each dish's ratings in submission order,
// then scales price, calories and protein onto the 1-5 rating band so all
// four curves share an axis. Calories and protein use fixed display
// bands; the price band adapts to the session's own price range with a
// little padding, which keeps it usable even when every dish costs the
// same.
func (s *RatingService) Timeline(sess *repository.Session) []dto.TimelineEntry {
	var entries []dto.TimelineEntry
	for _, item := range sess.Ratings.Snapshot() {
		for _, rating := range item.Ratings {
			entries = append(entries, dto.TimelineEntry{
				RecipeID:  item.ID,
				Title:     item.Title,
				Rating:    rating,
				BasePrice: item.BasePrice,
				Calories:  item.Calories,
				ProteinG:  item.ProteinG,
			})
		}
	}
	if len(entries) == 0 {
		return entries
	}

	priceLow, priceHigh := entries[0].BasePrice, entries[0].BasePrice
	for _, e := range entries[1:] {
		if e.BasePrice < priceLow {
			priceLow = e.BasePrice
		}
		if e.BasePrice > priceHigh {
			priceHigh = e.BasePrice
		}
	}
	priceLow -= scoring.TimelinePricePad
	priceHigh += scoring.TimelinePricePad

	for i := range entries {
		entries[i].MealNumber = i + 1
		entries[i].PriceScaled = scoring.ScaleToRatingBand(entries[i].BasePrice, priceLow, priceHigh)
		entries[i].CaloriesScaled = scoring.ScaleToRatingBand(entries[i].Calories,
			scoring.TimelineCaloriesLow, scoring.TimelineCaloriesHigh)
		entries[i].ProteinScaled = scoring.ScaleToRatingBand(entries[i].ProteinG,
			scoring.TimelineProteinLow, scoring.TimelineProteinHigh)
	}
	return entries
}
