package api

import (
	"smartmeal/docs"
	"smartmeal/internal/api/handlers"
	"smartmeal/internal/repository"
	"smartmeal/pkg/config"
	"smartmeal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	serverCfg *config.ServerConfig,
	sessions *repository.SessionRepository,
	ratingHandler *handlers.RatingHandler,
	rankingHandler *handlers.RankingHandler,
	favoriteHandler *handlers.FavoriteHandler,
	suggestHandler *handlers.SuggestHandler,
	sessionHandler *handlers.SessionHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.SessionHeader,
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Every API route runs inside a session
	api := app.Group("/api/v1", middleware.Session(sessions, appLogger))

	api.Post("/ratings", ratingHandler.RecordRating)
	api.Get("/ratings", ratingHandler.ListRatings)
	api.Get("/ratings/timeline", ratingHandler.Timeline)

	api.Get("/ranking", rankingHandler.Ranking)
	api.Get("/ranking/macros", rankingHandler.Macros)

	api.Post("/favorites", favoriteHandler.SaveFavorite)
	api.Get("/favorites", favoriteHandler.ListFavorites)
	api.Delete("/favorites/:id", favoriteHandler.RemoveFavorite)

	api.Get("/suggestions", suggestHandler.Suggest)
	api.Get("/session", sessionHandler.Info)

	return app
}
