package collector

import "github.com/messfin/zmtechstockAIagent/internal/model"

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	// FetchDailyBars returns up to `days` most recent daily bars,
	// chronologically sorted.
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
