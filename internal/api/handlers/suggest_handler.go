package handlers

import (
	"errors"

	"smartmeal/internal/dto"
	"smartmeal/internal/models"
	"smartmeal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SuggestHandler struct {
	suggestService *service.SuggestService
	currency       string
	logger         *zap.Logger
}

func NewSuggestHandler(suggestService *service.SuggestService, currency string, logger *zap.Logger) *SuggestHandler {
	return &SuggestHandler{
		suggestService: suggestService,
		currency:       currency,
		logger:         logger,
	}
}

// Suggest godoc
// @Summary Surprise me
// @Description Get one dish similar to a random favorite, excluding everything already favorited
// @Tags suggestions
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/suggestions [get]
func (h *SuggestHandler) Suggest(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	pick, err := h.suggestService.Suggest(c.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoFavorites):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Save a favorite first to get suggestions",
			})
		case errors.Is(err, models.ErrNoSuggestions):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No similar dishes found, try again later",
			})
		default:
			h.logger.Error("Failed to fetch suggestion", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Similar-dish source is unavailable",
			})
		}
	}

	return c.JSON(dto.SuggestionResponse{
		RecipeID:  pick.ID,
		Title:     pick.Title,
		Image:     pick.Image,
		Calories:  pick.Calories,
		BasePrice: pick.BasePrice,
		Currency:  h.currency,
	})
}
