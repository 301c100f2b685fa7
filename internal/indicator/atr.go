package indicator

import (
	"math"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// ATR computes the Average True Range as a simple rolling mean of the
// true range over the period. The first bar has no previous close, so
// its true range is just High-Low. Positions before the first full
// window are NaN.
func ATR(bars []model.OHLCV, period int) []float64 {
	tr := TrueRange(bars)
	return SMA(tr, period)
}

// TrueRange computes max(H-L, |H-prevC|, |L-prevC|) per bar.
func TrueRange(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		hl := b.High - b.Low
		if i == 0 {
			out[i] = hl
			continue
		}
		prevClose := bars[i-1].Close
		hc := math.Abs(b.High - prevClose)
		lc := math.Abs(b.Low - prevClose)
		out[i] = math.Max(hl, math.Max(hc, lc))
	}
	return out
}
