package service

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"smartmeal/internal/models"
)

// GuardedSource wraps a SimilarRecipeSource in a circuit breaker. A
// source that keeps failing trips the breaker open and suggestion
// requests degrade immediately instead of waiting on a dead backend.
// A not-found answer is a clean answer and never counts as a failure.
type GuardedSource struct {
	inner   SimilarRecipeSource
	breaker *gobreaker.CircuitBreaker
}

func NewGuardedSource(inner SimilarRecipeSource, logger *zap.Logger) *GuardedSource {
	settings := gobreaker.Settings{
		Name:    "similar-recipe-source",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, models.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("recipe source breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &GuardedSource{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *GuardedSource) Similar(ctx context.Context, seedID string, limit int) ([]string, error) {
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.inner.Similar(ctx, seedID, limit)
	})
	if err != nil {
		return nil, err
	}
	return out.([]string), nil
}

func (g *GuardedSource) Info(ctx context.Context, id string) (*models.Recipe, error) {
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.inner.Info(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return out.(*models.Recipe), nil
}
