package models

import "time"

// Recipe is the catalog metadata for one dish, passed through from whatever
// recipe search the host application runs. Only Calories and BasePrice take
// part in scoring; everything else is display passthrough.
type Recipe struct {
	ID        string
	Title     string
	Image     string
	Calories  float64
	BasePrice float64
	ProteinG  float64
	FatG      float64
	CarbsG    float64
}

// RatedItem is a recipe that has received at least one rating. The embedded
// Recipe is snapshotted when the first rating arrives and never updated,
// even when the catalog entry for the same id changes later. Ratings is
// append-only and keeps submission order.
type RatedItem struct {
	Recipe
	Ratings   []float64
	CreatedAt time.Time
}

// Clone returns a deep copy whose ratings slice shares no backing storage
// with the original.
func (r *RatedItem) Clone() *RatedItem {
	cp := *r
	cp.Ratings = append([]float64(nil), r.Ratings...)
	return &cp
}

// ScoredItem is a RatedItem plus the metrics derived in one scoring pass.
// It is recomputed from scratch on every pass and never stored; the three
// normalized fields are only comparable to items of the same pass.
type ScoredItem struct {
	RatedItem
	SmoothedRating     float64
	AdjustedPrice      float64
	NormalizedRating   float64
	NormalizedPrice    float64
	NormalizedCalories float64
	CompositeScore     float64
}
