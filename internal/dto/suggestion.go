package dto

// SuggestionResponse is one dish picked by the surprise-me flow: similar
// to a random favorite and not itself a favorite.
type SuggestionResponse struct {
	RecipeID  string  `json:"recipe_id"`
	Title     string  `json:"title"`
	Image     string  `json:"image,omitempty"`
	Calories  float64 `json:"calories"`
	BasePrice float64 `json:"base_price"`
	Currency  string  `json:"currency" example:"CHF"`
}
