package service

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"smartmeal/internal/models"
)

const maxTitleLen = 200

// cleanDisplayString normalizes client-supplied display text: invalid
// UTF-8 sequences and control characters are dropped, surrounding
// whitespace is trimmed and the result is capped at maxTitleLen runes.
// Clients forward recipe metadata verbatim from third-party search
// results, so none of it can be assumed tidy.
func cleanDisplayString(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
		s = s[size:]
	}

	out := strings.TrimSpace(b.String())
	if utf8.RuneCountInString(out) > maxTitleLen {
		out = string([]rune(out)[:maxTitleLen])
	}
	return out
}

// validateRating rejects ratings outside the 1-5 scale. NaN compares
// false against every bound, so it needs its own check.
func validateRating(rating float64) error {
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating < 1 || rating > 5 {
		return fmt.Errorf("rating %g is outside the 1.0-5.0 scale: %w", rating, models.ErrInvalidInput)
	}
	return nil
}

// validateRecipe rejects metadata the scoring pipeline cannot work with.
func validateRecipe(r models.Recipe) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("recipe id is required: %w", models.ErrInvalidInput)
	}
	numbers := []struct {
		name  string
		value float64
	}{
		{"calories", r.Calories},
		{"base_price", r.BasePrice},
		{"protein_g", r.ProteinG},
		{"fat_g", r.FatG},
		{"carbs_g", r.CarbsG},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s must be a finite number: %w", n.name, models.ErrInvalidInput)
		}
		if n.value < 0 {
			return fmt.Errorf("%s must not be negative, got %g: %w", n.name, n.value, models.ErrInvalidInput)
		}
	}
	return nil
}
