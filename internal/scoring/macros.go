package scoring

import "smartmeal/internal/models"

// Energy density of each macronutrient in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Display bands for the preference timeline: fixed spans for calories and
// protein, and half a currency unit of padding around the session's price
// range so a single price still yields a usable band.
const (
	TimelineCaloriesLow  = 100
	TimelineCaloriesHigh = 1500
	TimelineProteinLow   = 0
	TimelineProteinHigh  = 100
	TimelinePricePad     = 0.5
)

// MacroBreakdown is the energy split of one dish across macronutrients.
// TotalKcal is the sum of the three components and usually differs from
// the labeled calorie count.
type MacroBreakdown struct {
	ProteinKcal float64
	CarbsKcal   float64
	FatKcal     float64
	TotalKcal   float64
	ProteinPct  float64
	CarbsPct    float64
	FatPct      float64
}

// MacrosOf converts a recipe's macro grams into kcal figures with the 4/4/9
// rule and the percentage each contributes. A dish with no macro data
// yields all zeros.
func MacrosOf(r models.Recipe) MacroBreakdown {
	b := MacroBreakdown{
		ProteinKcal: r.ProteinG * kcalPerGramProtein,
		CarbsKcal:   r.CarbsG * kcalPerGramCarbs,
		FatKcal:     r.FatG * kcalPerGramFat,
	}
	b.TotalKcal = b.ProteinKcal + b.CarbsKcal + b.FatKcal
	if b.TotalKcal > 0 {
		b.ProteinPct = 100 * b.ProteinKcal / b.TotalKcal
		b.CarbsPct = 100 * b.CarbsKcal / b.TotalKcal
		b.FatPct = 100 * b.FatKcal / b.TotalKcal
	}
	return b
}

// Mean returns the plain arithmetic mean of a rating history, 0 when the
// history is empty. The macro view shows this instead of the smoothed
// rating so the chart reflects what the user actually clicked.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ScaleToRatingBand maps value linearly from [low, high] onto the 1-5
// rating scale and clamps outliers to the ends, so price and nutrition
// curves can be drawn on the same axis as ratings. A zero-width band maps
// everything to the middle of the scale.
func ScaleToRatingBand(value, low, high float64) float64 {
	if high <= low {
		return 3.0
	}
	scaled := 1 + 4*(value-low)/(high-low)
	if scaled < 1 {
		return 1
	}
	if scaled > 5 {
		return 5
	}
	return scaled
}
