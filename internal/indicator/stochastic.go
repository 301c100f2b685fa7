package indicator

import "github.com/messfin/zmtechstockAIagent/internal/model"

// Stochastic oscillator defaults.
const (
	StochKPeriod = 14
	StochDPeriod = 3
)

// Stochastic computes %K = 100*(Close - L14)/(H14 - L14) over a 14-bar
// window and %D as its 3-bar SMA. A window where the 14-bar high equals
// the 14-bar low divides by zero and yields NaN or +-Inf per IEEE-754;
// downstream consumers treat those as undefined.
func Stochastic(bars []model.OHLCV) (k, d []float64) {
	lowMin := RollingMin(Lows(bars), StochKPeriod)
	highMax := RollingMax(Highs(bars), StochKPeriod)

	k = make([]float64, len(bars))
	for i, b := range bars {
		k[i] = 100 * (b.Close - lowMin[i]) / (highMax[i] - lowMin[i])
	}
	d = SMA(k, StochDPeriod)
	return k, d
}
