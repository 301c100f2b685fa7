// Package indicator computes technical indicator series from normalized
// OHLCV bars. Every function is pure: it reads the input bars and returns
// new slices aligned with them, with math.NaN() marking positions where
// the indicator's lookback window is not yet full. Division edge cases
// (flat RSI window, zero volume, flat stochastic range) propagate NaN or
// Inf per IEEE-754 instead of failing.
package indicator

import (
	"math"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// Closes extracts the close column from bars.
func Closes(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high column from bars.
func Highs(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low column from bars.
func Lows(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the volume column from bars.
func Volumes(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
