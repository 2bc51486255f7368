package handlers

import (
	"time"

	"smartmeal/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	logger *zap.Logger
}

func NewSessionHandler(logger *zap.Logger) *SessionHandler {
	return &SessionHandler{logger: logger}
}

// Info godoc
// @Summary Describe the session
// @Description Get the caller's session id and store sizes; calling without a header is the way to open a session
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/session [get]
func (h *SessionHandler) Info(c *fiber.Ctx) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	return c.JSON(dto.SessionResponse{
		SessionID:     sess.ID.String(),
		CreatedAt:     sess.CreatedAt.Format(time.RFC3339),
		RatedCount:    sess.Ratings.Len(),
		FavoriteCount: sess.Favorites.Len(),
	})
}
