package indicator

import (
	"math"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// HeikinAshi computes Heikin-Ashi candles from regular bars.
//
// HA close is the plain per-bar average (O+H+L+C)/4. HA open is a
// recurrence over its own previous output:
//
//	HAOpen[0] = (Open[0] + Close[0]) / 2
//	HAOpen[t] = (HAOpen[t-1] + HAClose[t-1]) / 2
//
// so it must be computed bar by bar in chronological order; it cannot be
// expressed as a rolling-window operation. The recurrence is fully
// deterministic: recomputing on the same input yields bit-identical
// output. HA high/low clamp the bar's extremes around the HA body.
func HeikinAshi(bars []model.OHLCV) (haOpen, haHigh, haLow, haClose []float64) {
	n := len(bars)
	haOpen = make([]float64, n)
	haHigh = make([]float64, n)
	haLow = make([]float64, n)
	haClose = make([]float64, n)
	if n == 0 {
		return haOpen, haHigh, haLow, haClose
	}

	for i, b := range bars {
		haClose[i] = (b.Open + b.High + b.Low + b.Close) / 4
	}

	haOpen[0] = (bars[0].Open + bars[0].Close) / 2
	for i := 1; i < n; i++ {
		haOpen[i] = (haOpen[i-1] + haClose[i-1]) / 2
	}

	for i, b := range bars {
		haHigh[i] = math.Max(b.High, math.Max(haOpen[i], haClose[i]))
		haLow[i] = math.Min(b.Low, math.Min(haOpen[i], haClose[i]))
	}
	return haOpen, haHigh, haLow, haClose
}
