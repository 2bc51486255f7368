package handlers

import (
	"errors"

	"smartmeal/internal/dto"
	"smartmeal/internal/models"
	"smartmeal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
	logger          *zap.Logger
}

func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// SaveFavorite godoc
// @Summary Save a favorite
// @Description Add a recipe to the session's favorites, replacing an earlier save of the same recipe
// @Tags favorites
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body dto.SaveFavoriteRequest true "Favorite recipe"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/favorites [post]
func (h *FavoriteHandler) SaveFavorite(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	var req dto.SaveFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, err := h.favoriteService.Save(sess, recipeFromPayload(req.RecipePayload))
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to save favorite", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toFavoriteResponse(saved))
}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Description Delete one recipe from the session's favorites
// @Tags favorites
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param id path string true "Recipe id"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/favorites/{id} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(sess, c.Params("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to remove favorite", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove favorite",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListFavorites godoc
// @Summary List favorites
// @Description Get the session's favorites in the order they were saved
// @Tags favorites
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} dto.FavoriteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	favorites := h.favoriteService.List(sess)
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, toFavoriteResponse(f))
	}
	return c.JSON(out)
}

func toFavoriteResponse(r models.Recipe) dto.FavoriteResponse {
	return dto.FavoriteResponse{
		RecipeID:  r.ID,
		Title:     r.Title,
		Image:     r.Image,
		Calories:  r.Calories,
		BasePrice: r.BasePrice,
		ProteinG:  r.ProteinG,
		FatG:      r.FatG,
		CarbsG:    r.CarbsG,
	}
}
