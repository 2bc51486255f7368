package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartmeal/internal/models"
)

func TestMacrosOf(t *testing.T) {
	b := MacrosOf(models.Recipe{ProteinG: 30, CarbsG: 50, FatG: 20})

	// 4/4/9 kcal per gram.
	assert.InDelta(t, 120, b.ProteinKcal, 1e-9)
	assert.InDelta(t, 200, b.CarbsKcal, 1e-9)
	assert.InDelta(t, 180, b.FatKcal, 1e-9)
	assert.InDelta(t, 500, b.TotalKcal, 1e-9)

	assert.InDelta(t, 24, b.ProteinPct, 1e-9)
	assert.InDelta(t, 40, b.CarbsPct, 1e-9)
	assert.InDelta(t, 36, b.FatPct, 1e-9)
}

func TestMacrosOfNoData(t *testing.T) {
	b := MacrosOf(models.Recipe{})
	assert.Zero(t, b.TotalKcal)
	assert.Zero(t, b.ProteinPct)
	assert.Zero(t, b.CarbsPct)
	assert.Zero(t, b.FatPct)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 3.0, Mean([]float64{2, 3, 4}), 1e-9)
	assert.InDelta(t, 4.5, Mean([]float64{4, 5}), 1e-9)
}

func TestScaleToRatingBand(t *testing.T) {
	tests := []struct {
		name             string
		value, low, high float64
		want             float64
	}{
		{"bottom of band", 100, 100, 1500, 1},
		{"top of band", 1500, 100, 1500, 5},
		{"middle of band", 800, 100, 1500, 3},
		{"clamped below", 40, 100, 1500, 1},
		{"clamped above", 2200, 100, 1500, 5},
		{"protein band", 50, 0, 100, 3},
		{"degenerate band maps to middle", 9.5, 9.5, 9.5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScaleToRatingBand(tt.value, tt.low, tt.high), 1e-9)
		})
	}
}
