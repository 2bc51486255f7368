package dto

// ScoredItemResponse is one dish after a scoring pass. The normalized
// fields and the composite score are relative to this pass only and must
// not be compared across responses.
type ScoredItemResponse struct {
	RecipeID           string  `json:"recipe_id"`
	Title              string  `json:"title"`
	Image              string  `json:"image,omitempty"`
	Calories           float64 `json:"calories"`
	BasePrice          float64 `json:"base_price"`
	RatingsCount       int     `json:"ratings_count"`
	SmoothedRating     float64 `json:"smoothed_rating"`
	AdjustedPrice      float64 `json:"adjusted_price"`
	NormalizedRating   float64 `json:"normalized_rating"`
	NormalizedPrice    float64 `json:"normalized_price"`
	NormalizedCalories float64 `json:"normalized_calories"`
	CompositeScore     float64 `json:"composite_score"`
}

// RankingResponse is a full scoring pass: every rated dish sorted by
// composite score, best first, plus the dish of the day. With no rated
// dishes DishOfTheDay is null and Items is empty.
type RankingResponse struct {
	DishOfTheDay *ScoredItemResponse  `json:"dish_of_the_day"`
	Items        []ScoredItemResponse `json:"items"`
	Currency     string               `json:"currency" example:"CHF"`
}

// DishMacrosResponse is the macronutrient energy split of one rated dish,
// shown alongside its plain mean rating.
type DishMacrosResponse struct {
	RecipeID    string  `json:"recipe_id"`
	Title       string  `json:"title"`
	Calories    float64 `json:"calories"`
	MeanRating  float64 `json:"mean_rating"`
	ProteinKcal float64 `json:"protein_kcal"`
	CarbsKcal   float64 `json:"carbs_kcal"`
	FatKcal     float64 `json:"fat_kcal"`
	MacroKcal   float64 `json:"macro_kcal"`
	ProteinPct  float64 `json:"protein_pct"`
	CarbsPct    float64 `json:"carbs_pct"`
	FatPct      float64 `json:"fat_pct"`
}
