package indicator

import "github.com/messfin/zmtechstockAIagent/internal/model"

// VWAP computes the volume-weighted average price, accumulating typical
// price ((H+L+C)/3) times volume from the start of the series. The
// accumulation is series-cumulative, not session-anchored: supplying
// multiple trading days produces one running VWAP over all of them.
// While the cumulative volume is zero the value is NaN (0/0).
func VWAP(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	var cumPV, cumVol float64
	for i, b := range bars {
		typical := (b.High + b.Low + b.Close) / 3
		cumPV += typical * b.Volume
		cumVol += b.Volume
		out[i] = cumPV / cumVol
	}
	return out
}
