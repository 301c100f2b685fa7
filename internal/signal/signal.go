// Package signal derives discrete buy/sell events from MACD crossovers
// gated by RSI.
package signal

import (
	"fmt"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// RSI gate thresholds. A MACD cross with RSI already in the excluded
// zone produces no signal for that bar.
const (
	BuyRSICeiling = 70
	SellRSIFloor  = 30
)

// Generate produces buy/sell flags from equal-length MACD, signal-line,
// and RSI series:
//
//	Buy[t]  = MACD[t] > Sig[t] && MACD[t-1] <= Sig[t-1] && RSI[t] < 70
//	Sell[t] = MACD[t] < Sig[t] && MACD[t-1] >= Sig[t-1] && RSI[t] > 30
//
// Bar 0 has no predecessor and is always false. NaN values fail every
// comparison, so undefined RSI positions cannot trigger. The two
// conditions cannot both hold at one index.
func Generate(macd, sig, rsi []float64) (model.SignalSet, error) {
	if len(macd) != len(sig) || len(macd) != len(rsi) {
		return model.SignalSet{}, fmt.Errorf("signal: series length mismatch: macd=%d signal=%d rsi=%d",
			len(macd), len(sig), len(rsi))
	}

	buy := make([]bool, len(macd))
	sell := make([]bool, len(macd))
	for t := 1; t < len(macd); t++ {
		crossedUp := macd[t] > sig[t] && macd[t-1] <= sig[t-1]
		crossedDown := macd[t] < sig[t] && macd[t-1] >= sig[t-1]

		buy[t] = crossedUp && rsi[t] < BuyRSICeiling
		sell[t] = crossedDown && rsi[t] > SellRSIFloor
	}
	return model.SignalSet{Buy: buy, Sell: sell}, nil
}
