package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"smartmeal/internal/models"
	"smartmeal/internal/repository"
)

// SimilarRecipeSource finds dishes similar to a seed dish. Implementations
// may sit in front of a remote recipe API and are expected to fail; the
// suggestion flow treats a per-candidate failure as a degraded result, not
// an aborted request.
type SimilarRecipeSource interface {
	// Similar returns candidate recipe ids ordered most similar first.
	Similar(ctx context.Context, seedID string, limit int) ([]string, error)
	// Info resolves one candidate's metadata.
	Info(ctx context.Context, id string) (*models.Recipe, error)
}

const defaultCandidates = 6

// SuggestService implements the surprise-me flow: a random favorite seeds
// a similar-dish lookup, everything already saved as a favorite is
// excluded and one surviving candidate comes back at random.
type SuggestService struct {
	source     SimilarRecipeSource
	candidates int
	logger     *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSuggestService(source SimilarRecipeSource, candidates int, logger *zap.Logger) *SuggestService {
	if candidates <= 0 {
		candidates = defaultCandidates
	}
	return &SuggestService{
		source:     source,
		candidates: candidates,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Suggest returns one dish the session has not favorited yet, similar to
// one of its favorites. With no favorites it returns ErrNoFavorites; when
// every candidate is filtered out or unresolvable it returns
// ErrNoSuggestions.
func (s *SuggestService) Suggest(ctx context.Context, sess *repository.Session) (*models.Recipe, error) {
	favorites := sess.Favorites.List()
	if len(favorites) == 0 {
		return nil, models.ErrNoFavorites
	}
	seed := favorites[s.intn(len(favorites))]

	ids, err := s.source.Similar(ctx, seed.ID, s.candidates)
	if err != nil {
		return nil, fmt.Errorf("similar lookup for %q: %w", seed.ID, err)
	}

	// Best-effort enrichment: a candidate whose metadata cannot be
	// resolved shrinks the pool instead of failing the request.
	var pool []models.Recipe
	for _, id := range ids {
		if id == seed.ID || sess.Favorites.Has(id) {
			continue
		}
		info, err := s.source.Info(ctx, id)
		if err != nil {
			s.logger.Warn("skipping similar dish",
				zap.String("recipe_id", id),
				zap.Error(err),
			)
			continue
		}
		pool = append(pool, *info)
	}
	if len(pool) == 0 {
		return nil, models.ErrNoSuggestions
	}

	pick := pool[s.intn(len(pool))]
	s.logger.Info("suggestion served",
		zap.String("session_id", sess.ID.String()),
		zap.String("seed_id", seed.ID),
		zap.String("recipe_id", pick.ID),
		zap.Int("pool", len(pool)),
	)
	return &pick, nil
}

// intn serializes access to the rng, which is not safe for concurrent use.
func (s *SuggestService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
