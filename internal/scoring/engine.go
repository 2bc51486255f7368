// Package scoring implements the rating-to-score pipeline: Bayesian rating
// smoothing, rating-driven price adjustment, collection-relative min-max
// normalization and the weighted composite that picks the dish of the day.
package scoring

import (
	"fmt"
	"math"

	"smartmeal/internal/models"
)

// weightTolerance is how far the three composite weights may drift from
// summing to exactly 1.0 before the parameter set is rejected.
const weightTolerance = 1e-6

// Params holds every tunable constant of the scoring pipeline. Start from
// DefaultParams and override selected fields through the optional scoring
// YAML file; a zero Params does not validate.
type Params struct {
	// PriorMean is the rating every dish is pulled toward while it has few
	// ratings. PriorWeight is how many phantom ratings that prior is worth.
	PriorMean   float64 `yaml:"prior_mean"`
	PriorWeight float64 `yaml:"prior_weight"`

	// Composite weights for the normalized rating, price and calorie
	// components. They must sum to 1.0.
	RatingWeight   float64 `yaml:"rating_weight"`
	PriceWeight    float64 `yaml:"price_weight"`
	CaloriesWeight float64 `yaml:"calories_weight"`

	// Pricing bands. A smoothed rating of at least PremiumThreshold earns
	// the PremiumMultiplier markup, strictly below DiscountThreshold the
	// DiscountMultiplier markdown, anything between keeps the base price.
	PremiumThreshold   float64 `yaml:"premium_threshold"`
	DiscountThreshold  float64 `yaml:"discount_threshold"`
	PremiumMultiplier  float64 `yaml:"premium_multiplier"`
	DiscountMultiplier float64 `yaml:"discount_multiplier"`
}

// DefaultParams returns the production scoring constants.
func DefaultParams() Params {
	return Params{
		PriorMean:   3.5,
		PriorWeight: 5,

		RatingWeight:   0.5,
		PriceWeight:    0.3,
		CaloriesWeight: 0.2,

		PremiumThreshold:   4.5,
		DiscountThreshold:  3.0,
		PremiumMultiplier:  1.2,
		DiscountMultiplier: 0.9,
	}
}

// Validate rejects parameter sets the pipeline cannot score with.
func (p Params) Validate() error {
	if p.PriorWeight <= 0 {
		return fmt.Errorf("prior_weight must be positive, got %g", p.PriorWeight)
	}
	if p.PriorMean < 1.0 || p.PriorMean > 5.0 {
		return fmt.Errorf("prior_mean %g is outside the 1-5 rating scale", p.PriorMean)
	}
	if p.RatingWeight < 0 || p.PriceWeight < 0 || p.CaloriesWeight < 0 {
		return fmt.Errorf("composite weights must be non-negative")
	}
	sum := p.RatingWeight + p.PriceWeight + p.CaloriesWeight
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("composite weights must sum to 1.0, got %g", sum)
	}
	if p.DiscountThreshold > p.PremiumThreshold {
		return fmt.Errorf("discount_threshold %g is above premium_threshold %g",
			p.DiscountThreshold, p.PremiumThreshold)
	}
	if p.PremiumMultiplier <= 0 || p.DiscountMultiplier <= 0 {
		return fmt.Errorf("price multipliers must be positive")
	}
	return nil
}

// Engine scores rated dishes. It carries no state besides its parameters
// and is safe for concurrent use.
type Engine struct {
	params Params
}

// NewEngine creates a scoring engine; a nil params selects the defaults.
func NewEngine(params *Params) *Engine {
	if params == nil {
		return &Engine{params: DefaultParams()}
	}
	return &Engine{params: *params}
}

// Params returns the engine's parameter set.
func (e *Engine) Params() Params {
	return e.params
}

// SmoothedRating returns the Bayesian average of a dish's ratings: the
// observed mean shrunk toward PriorMean as if the prior were worth
// PriorWeight extra ratings. An empty history returns 0.0, which means
// "no data" and never a score on the 1-5 scale; callers must exclude such
// dishes from scoring instead of ranking them last.
func (e *Engine) SmoothedRating(ratings []float64) float64 {
	n := float64(len(ratings))
	if n == 0 {
		return 0.0
	}
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	mean := sum / n
	return (e.params.PriorWeight*e.params.PriorMean + n*mean) / (e.params.PriorWeight + n)
}

// AdjustedPrice applies the rating bands to a base price and rounds to
// cents. A zero base price stays zero, so an unknown price never turns
// into a misleading adjusted one. The premium band includes its lower
// bound (a 4.5 rating earns the markup) while the discount band excludes
// its upper bound (a 3.0 rating keeps the base price).
func (e *Engine) AdjustedPrice(basePrice, rating float64) float64 {
	if basePrice == 0 {
		return 0.0
	}
	switch {
	case rating >= e.params.PremiumThreshold:
		return round2(basePrice * e.params.PremiumMultiplier)
	case rating < e.params.DiscountThreshold:
		return round2(basePrice * e.params.DiscountMultiplier)
	default:
		return round2(basePrice)
	}
}

// Normalize min-max scales values onto [0, 1] relative to the collection
// itself. When every value is equal the scale is degenerate and each
// element maps to 1.0. With reverse set the scale flips to 1-x for
// lower-is-better metrics such as price and calories. Outputs from
// different collections are not comparable.
func Normalize(values []float64, reverse bool) []float64 {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(values))
	if min == max {
		for i := range out {
			out[i] = 1.0
		}
		return out
	}
	span := max - min
	for i, v := range values {
		x := (v - min) / span
		if reverse {
			x = 1 - x
		}
		out[i] = x
	}
	return out
}

// ScoreAll runs one scoring pass over a session's rated dishes and returns
// them in input order. Dishes with no ratings are dropped before anything
// else happens, so the 0.0 smoothing sentinel never reaches normalization.
// The three normalizations then run over everything that remains, which
// makes every derived score relative to this pass alone.
func (e *Engine) ScoreAll(items []*models.RatedItem) []models.ScoredItem {
	scored := make([]models.ScoredItem, 0, len(items))
	for _, it := range items {
		if it == nil || len(it.Ratings) == 0 {
			continue
		}
		smoothed := e.SmoothedRating(it.Ratings)
		scored = append(scored, models.ScoredItem{
			RatedItem:      *it,
			SmoothedRating: smoothed,
			AdjustedPrice:  e.AdjustedPrice(it.BasePrice, smoothed),
		})
	}
	if len(scored) == 0 {
		return scored
	}

	ratings := make([]float64, len(scored))
	prices := make([]float64, len(scored))
	calories := make([]float64, len(scored))
	for i, s := range scored {
		ratings[i] = s.SmoothedRating
		prices[i] = s.AdjustedPrice
		calories[i] = s.Calories
	}
	normRatings := Normalize(ratings, false)
	normPrices := Normalize(prices, true)
	normCalories := Normalize(calories, true)

	for i := range scored {
		scored[i].NormalizedRating = normRatings[i]
		scored[i].NormalizedPrice = normPrices[i]
		scored[i].NormalizedCalories = normCalories[i]
		scored[i].CompositeScore = e.params.RatingWeight*normRatings[i] +
			e.params.PriceWeight*normPrices[i] +
			e.params.CaloriesWeight*normCalories[i]
	}
	return scored
}

// PickBest returns the dish with the highest composite score, taking the
// earliest one in input order on ties, or nil for an empty pass. Input
// order is the store's insertion order, never map iteration order, so the
// winner is deterministic.
func PickBest(scored []models.ScoredItem) *models.ScoredItem {
	if len(scored) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].CompositeScore > scored[best].CompositeScore {
			best = i
		}
	}
	return &scored[best]
}

// round2 rounds to the cent precision prices are displayed with.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
