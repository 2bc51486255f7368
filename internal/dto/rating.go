package dto

// RecipePayload is the metadata passthrough attached to rating and
// favorite submissions. The service never looks recipes up itself; the
// client sends whatever its recipe search returned.
type RecipePayload struct {
	RecipeID  string  `json:"recipe_id" example:"716429"`
	Title     string  `json:"title" example:"Pasta with Garlic"`
	Image     string  `json:"image,omitempty" example:"https://img.spoonacular.com/recipes/716429-312x231.jpg"`
	Calories  float64 `json:"calories" example:"584"`
	BasePrice float64 `json:"base_price" example:"12.5"`
	ProteinG  float64 `json:"protein_g" example:"19"`
	FatG      float64 `json:"fat_g" example:"20"`
	CarbsG    float64 `json:"carbs_g" example:"83"`
}

// RecordRatingRequest carries one rating submission.
type RecordRatingRequest struct {
	RecipePayload
	Rating float64 `json:"rating" example:"4.5"`
}

// RatedItemResponse is one dish's rating history together with the frozen
// metadata snapshot taken at its first rating.
type RatedItemResponse struct {
	RecipeID  string    `json:"recipe_id"`
	Title     string    `json:"title"`
	Image     string    `json:"image,omitempty"`
	Calories  float64   `json:"calories"`
	BasePrice float64   `json:"base_price"`
	ProteinG  float64   `json:"protein_g"`
	FatG      float64   `json:"fat_g"`
	CarbsG    float64   `json:"carbs_g"`
	Ratings   []float64 `json:"ratings"`
	CreatedAt string    `json:"created_at"`
}

// TimelineEntry is one rating event on the meal timeline. The *_scaled
// fields map price, calories and protein onto the 1-5 rating band so the
// four curves share an axis.
type TimelineEntry struct {
	MealNumber     int     `json:"meal_number"`
	RecipeID       string  `json:"recipe_id"`
	Title          string  `json:"title"`
	Rating         float64 `json:"rating"`
	BasePrice      float64 `json:"base_price"`
	Calories       float64 `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	PriceScaled    float64 `json:"price_scaled"`
	CaloriesScaled float64 `json:"calories_scaled"`
	ProteinScaled  float64 `json:"protein_scaled"`
}
