// Demo seeder: fills a running SmartMeal server with a small session of
// rated dishes and favorites, then prints the resulting dish of the day
// and a suggestion. Useful as a smoke test after deploying.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"smartmeal/internal/dto"
	"smartmeal/pkg/config"
	"smartmeal/pkg/logger"
	"smartmeal/pkg/middleware"

	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", "", "base URL of the server (default http://localhost:<SERVER_PORT>)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	base := *addr
	if base == "" {
		base = "http://localhost:" + cfg.Server.Port
	}
	client := &apiClient{
		base:   base,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: appLogger,
	}

	appLogger.Info("Seeding demo session", zap.String("server", base))

	var session dto.SessionResponse
	if err := client.do(http.MethodGet, "/api/v1/session", nil, &session); err != nil {
		appLogger.Fatal("Server is not reachable", zap.Error(err))
	}
	appLogger.Info("Session opened", zap.String("session_id", session.SessionID))

	ratings := []dto.RecordRatingRequest{
		{RecipePayload: alpineBowl, Rating: 5},
		{RecipePayload: alpineBowl, Rating: 5},
		{RecipePayload: smashBurger, Rating: 3},
		{RecipePayload: coldSoup, Rating: 1},
		{RecipePayload: coldSoup, Rating: 1},
		{RecipePayload: coldSoup, Rating: 1},
		{RecipePayload: pokeBowl, Rating: 4.5},
		{RecipePayload: carbonara, Rating: 4},
	}
	for _, r := range ratings {
		var item dto.RatedItemResponse
		if err := client.do(http.MethodPost, "/api/v1/ratings", r, &item); err != nil {
			appLogger.Warn("Failed to record rating", zap.String("recipe_id", r.RecipeID), zap.Error(err))
			continue
		}
		appLogger.Info("Rated", zap.String("title", item.Title), zap.Float64("rating", r.Rating))
	}

	var favorite dto.FavoriteResponse
	if err := client.do(http.MethodPost, "/api/v1/favorites",
		dto.SaveFavoriteRequest{RecipePayload: alpineBowl}, &favorite); err != nil {
		appLogger.Warn("Failed to save favorite", zap.Error(err))
	}

	var ranking dto.RankingResponse
	if err := client.do(http.MethodGet, "/api/v1/ranking", nil, &ranking); err != nil {
		appLogger.Fatal("Failed to fetch ranking", zap.Error(err))
	}
	if ranking.DishOfTheDay != nil {
		appLogger.Info("Dish of the day",
			zap.String("title", ranking.DishOfTheDay.Title),
			zap.Float64("composite_score", ranking.DishOfTheDay.CompositeScore),
			zap.Float64("adjusted_price", ranking.DishOfTheDay.AdjustedPrice),
			zap.String("currency", ranking.Currency),
		)
	}
	for _, item := range ranking.Items {
		appLogger.Info("Ranked",
			zap.String("title", item.Title),
			zap.Float64("composite_score", item.CompositeScore),
			zap.Float64("smoothed_rating", item.SmoothedRating),
		)
	}

	var suggestion dto.SuggestionResponse
	if err := client.do(http.MethodGet, "/api/v1/suggestions", nil, &suggestion); err != nil {
		appLogger.Warn("No suggestion available", zap.Error(err))
	} else {
		appLogger.Info("Surprise dish", zap.String("title", suggestion.Title))
	}

	appLogger.Info("Demo seeding completed")
}

var (
	alpineBowl = dto.RecipePayload{
		RecipeID: "demo-alpine-bowl", Title: "Alpine Grain Bowl",
		Calories: 400, BasePrice: 10, ProteinG: 24, FatG: 12, CarbsG: 48,
	}
	smashBurger = dto.RecipePayload{
		RecipeID: "demo-smash-burger", Title: "Smash Burger",
		Calories: 800, BasePrice: 8, ProteinG: 35, FatG: 45, CarbsG: 55,
	}
	coldSoup = dto.RecipePayload{
		RecipeID: "demo-cold-soup", Title: "Cold Cucumber Soup",
		Calories: 300, BasePrice: 12, ProteinG: 8, FatG: 14, CarbsG: 30,
	}
	pokeBowl = dto.RecipePayload{
		RecipeID: "demo-poke-bowl", Title: "Salmon Poke Bowl",
		Calories: 520, BasePrice: 13.5, ProteinG: 32, FatG: 18, CarbsG: 52,
	}
	carbonara = dto.RecipePayload{
		RecipeID: "demo-carbonara", Title: "Spaghetti Carbonara",
		Calories: 650, BasePrice: 11, ProteinG: 26, FatG: 28, CarbsG: 70,
	}
)

// apiClient is a thin JSON client that carries the session id across
// requests the way a browser client would.
type apiClient struct {
	base      string
	sessionID string
	http      *http.Client
	logger    *zap.Logger
}

func (c *apiClient) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if sid := resp.Header.Get(middleware.SessionHeader); sid != "" {
		c.sessionID = sid
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, bytes.TrimSpace(data))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
