package service

import (
	"go.uber.org/zap"

	"smartmeal/internal/dto"
	"smartmeal/internal/models"
	"smartmeal/internal/repository"
	"smartmeal/internal/scoring"
)

// RankingService runs scoring passes over a session's rated dishes.
type RankingService struct {
	engine *scoring.Engine
	logger *zap.Logger
}

func NewRankingService(engine *scoring.Engine, logger *zap.Logger) *RankingService {
	return &RankingService{
		engine: engine,
		logger: logger,
	}
}

// Ranking computes one scoring pass over a snapshot of the session's
// rated dishes and picks the dish of the day. The returned slice keeps
// the store's insertion order and the winner is the first highest
// composite score, so any reordering for display has to be stable to
// keep the two consistent.
func (s *RankingService) Ranking(sess *repository.Session) (*models.ScoredItem, []models.ScoredItem) {
	scored := s.engine.ScoreAll(sess.Ratings.Snapshot())
	best := scoring.PickBest(scored)
	if best != nil {
		s.logger.Debug("scoring pass finished",
			zap.String("session_id", sess.ID.String()),
			zap.Int("dishes", len(scored)),
			zap.String("dish_of_the_day", best.ID),
			zap.Float64("score", best.CompositeScore),
		)
	}
	return best, scored
}

// MacroSummary returns the macronutrient energy split of every rated dish
// in insertion order, each with its plain mean rating for display.
func (s *RankingService) MacroSummary(sess *repository.Session) []dto.DishMacrosResponse {
	items := sess.Ratings.Snapshot()
	out := make([]dto.DishMacrosResponse, 0, len(items))
	for _, item := range items {
		b := scoring.MacrosOf(item.Recipe)
		out = append(out, dto.DishMacrosResponse{
			RecipeID:    item.ID,
			Title:       item.Title,
			Calories:    item.Calories,
			MeanRating:  scoring.Mean(item.Ratings),
			ProteinKcal: b.ProteinKcal,
			CarbsKcal:   b.CarbsKcal,
			FatKcal:     b.FatKcal,
			MacroKcal:   b.TotalKcal,
			ProteinPct:  b.ProteinPct,
			CarbsPct:    b.CarbsPct,
			FatPct:      b.FatPct,
		})
	}
	return out
}
