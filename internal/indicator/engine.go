package indicator

import "github.com/messfin/zmtechstockAIagent/internal/model"

// Standard periods used by Compute.
const (
	RSIPeriod = 14
	ATRPeriod = 14
)

// Compute calculates the full indicator set for normalized bars. Each
// series is aligned with the input; indicators that need a lookback
// window carry NaN until their first full window.
func Compute(bars []model.OHLCV) model.IndicatorSet {
	closes := Closes(bars)
	macd, signal, histogram := MACD(closes)
	bbUpper, bbMiddle, bbLower := BollingerBands(closes)
	stochK, stochD := Stochastic(bars)
	haOpen, haHigh, haLow, haClose := HeikinAshi(bars)

	return model.IndicatorSet{
		EMA9:   EMA(closes, 9),
		EMA20:  EMA(closes, 20),
		EMA50:  EMA(closes, 50),
		EMA100: EMA(closes, 100),
		EMA200: EMA(closes, 200),

		MACD:      macd,
		Signal:    signal,
		Histogram: histogram,

		RSI:  RSI(closes, RSIPeriod),
		VWAP: VWAP(bars),

		BBUpper:  bbUpper,
		BBMiddle: bbMiddle,
		BBLower:  bbLower,

		ATR: ATR(bars, ATRPeriod),

		StochK: stochK,
		StochD: stochD,

		HAOpen:  haOpen,
		HAHigh:  haHigh,
		HALow:   haLow,
		HAClose: haClose,
	}
}
