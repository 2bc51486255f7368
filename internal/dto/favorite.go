package dto

// SaveFavoriteRequest adds a recipe to the session's favorites.
type SaveFavoriteRequest struct {
	RecipePayload
}

// FavoriteResponse is one saved favorite.
type FavoriteResponse struct {
	RecipeID  string  `json:"recipe_id"`
	Title     string  `json:"title"`
	Image     string  `json:"image,omitempty"`
	Calories  float64 `json:"calories"`
	BasePrice float64 `json:"base_price"`
	ProteinG  float64 `json:"protein_g"`
	FatG      float64 `json:"fat_g"`
	CarbsG    float64 `json:"carbs_g"`
}
