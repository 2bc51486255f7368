package handlers

import (
	"sort"

	"smartmeal/internal/dto"
	"smartmeal/internal/models"
	"smartmeal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RankingHandler struct {
	rankingService *service.RankingService
	currency       string
	logger         *zap.Logger
}

func NewRankingHandler(rankingService *service.RankingService, currency string, logger *zap.Logger) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
		currency:       currency,
		logger:         logger,
	}
}

// Ranking godoc
// @Summary Score the session's dishes
// @Description Run a scoring pass over every rated dish and pick the dish of the day
// @Tags ranking
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ranking [get]
func (h *RankingHandler) Ranking(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	best, scored := h.rankingService.Ranking(sess)

	items := make([]dto.ScoredItemResponse, 0, len(scored))
	for _, s := range scored {
		items = append(items, toScoredItemResponse(s))
	}
	// Stable sort keeps insertion order among equal scores, so the first
	// element is always the dish of the day.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CompositeScore > items[j].CompositeScore
	})

	resp := dto.RankingResponse{Items: items, Currency: h.currency}
	if best != nil {
		top := toScoredItemResponse(*best)
		resp.DishOfTheDay = &top
	}
	return c.JSON(resp)
}

// Macros godoc
// @Summary Macro breakdown of rated dishes
// @Description Get each rated dish's protein, carb and fat energy split with its mean rating
// @Tags ranking
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} dto.DishMacrosResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ranking/macros [get]
func (h *RankingHandler) Macros(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(h.rankingService.MacroSummary(sess))
}

func toScoredItemResponse(s models.ScoredItem) dto.ScoredItemResponse {
	return dto.ScoredItemResponse{
		RecipeID:           s.ID,
		Title:              s.Title,
		Image:              s.Image,
		Calories:           s.Calories,
		BasePrice:          s.BasePrice,
		RatingsCount:       len(s.Ratings),
		SmoothedRating:     s.SmoothedRating,
		AdjustedPrice:      s.AdjustedPrice,
		NormalizedRating:   s.NormalizedRating,
		NormalizedPrice:    s.NormalizedPrice,
		NormalizedCalories: s.NormalizedCalories,
		CompositeScore:     s.CompositeScore,
	}
}
