package middleware

import (
	"smartmeal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader carries the session id between client and service.
const SessionHeader = "X-Session-ID"

// SessionKey is the fiber.Ctx locals key the resolved session lives under.
const SessionKey = "session"

// Session resolves per-session state for every request. A valid uuid in
// X-Session-ID joins or revives that session, a missing header starts a
// fresh one, anything else is rejected. The response always echoes the id
// so clients can hold on to it.
func Session(sessions *repository.SessionRepository, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uuid.UUID
		if raw := c.Get(SessionHeader); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("Rejecting malformed session id", zap.String("value", raw))
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "X-Session-ID must be a UUID",
				})
			}
			id = parsed
		}

		sess := sessions.GetOrCreate(id)
		c.Locals(SessionKey, sess)
		c.Set(SessionHeader, sess.ID.String())

		return c.Next()
	}
}
