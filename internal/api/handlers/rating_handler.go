package handlers

import (
	"errors"
	"time"

	"smartmeal/internal/dto"
	"smartmeal/internal/models"
	"smartmeal/internal/repository"
	"smartmeal/internal/service"
	"smartmeal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RatingHandler struct {
	ratingService *service.RatingService
	logger        *zap.Logger
}

func NewRatingHandler(ratingService *service.RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		logger:        logger,
	}
}

// RecordRating godoc
// @Summary Rate a dish
// @Description Record one rating for a dish, creating its entry with the submitted metadata on first contact
// @Tags ratings
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id (a new session is created when omitted)"
// @Param request body dto.RecordRatingRequest true "Rating submission"
// @Success 201 {object} dto.RatedItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ratings [post]
func (h *RatingHandler) RecordRating(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	var req dto.RecordRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.ratingService.RecordRating(sess, recipeFromPayload(req.RecipePayload), req.Rating)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to record rating", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record rating",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toRatedItemResponse(item))
}

// ListRatings godoc
// @Summary List rated dishes
// @Description Get every rated dish of the session in first-rated order
// @Tags ratings
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} dto.RatedItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ratings [get]
func (h *RatingHandler) ListRatings(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	history := h.ratingService.History(sess)
	out := make([]dto.RatedItemResponse, 0, len(history))
	for _, item := range history {
		out = append(out, toRatedItemResponse(item))
	}
	return c.JSON(out)
}

// Timeline godoc
// @Summary Rating timeline
// @Description Get one entry per rating event with price, calories and protein scaled onto the 1-5 rating band
// @Tags ratings
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} dto.TimelineEntry
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ratings/timeline [get]
func (h *RatingHandler) Timeline(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	entries := h.ratingService.Timeline(sess)
	if entries == nil {
		entries = []dto.TimelineEntry{}
	}
	return c.JSON(entries)
}

func toRatedItemResponse(item *models.RatedItem) dto.RatedItemResponse {
	return dto.RatedItemResponse{
		RecipeID:  item.ID,
		Title:     item.Title,
		Image:     item.Image,
		Calories:  item.Calories,
		BasePrice: item.BasePrice,
		ProteinG:  item.ProteinG,
		FatG:      item.FatG,
		CarbsG:    item.CarbsG,
		Ratings:   item.Ratings,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

func recipeFromPayload(p dto.RecipePayload) models.Recipe {
	return models.Recipe{
		ID:        p.RecipeID,
		Title:     p.Title,
		Image:     p.Image,
		Calories:  p.Calories,
		BasePrice: p.BasePrice,
		ProteinG:  p.ProteinG,
		FatG:      p.FatG,
		CarbsG:    p.CarbsG,
	}
}

// getSession pulls the session the middleware resolved. A miss means a
// route was registered outside the session group; the app error handler
// turns the sentinel into a JSON 500.
func getSession(c *fiber.Ctx) (*repository.Session, error) {
	sess, ok := c.Locals(middleware.SessionKey).(*repository.Session)
	if !ok || sess == nil {
		return nil, fiber.ErrInternalServerError
	}
	return sess, nil
}
