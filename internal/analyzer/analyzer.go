// Package analyzer runs the full analysis pipeline for one symbol:
// fetch, normalize, indicators, signals, levels, trend and volume.
// Each call is stateless; analyzing different symbols concurrently from
// separate goroutines is safe because nothing is shared between runs.
package analyzer

import (
	"fmt"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/collector"
	"github.com/messfin/zmtechstockAIagent/internal/indicator"
	"github.com/messfin/zmtechstockAIagent/internal/levels"
	"github.com/messfin/zmtechstockAIagent/internal/model"
	"github.com/messfin/zmtechstockAIagent/internal/series"
	"github.com/messfin/zmtechstockAIagent/internal/signal"
	"github.com/messfin/zmtechstockAIagent/internal/trend"
)

// Analyzer orchestrates data fetching and the analysis pipeline.
type Analyzer struct {
	Fetcher      collector.Fetcher
	LookbackDays int
	LevelsWindow int
}

// New creates an Analyzer with default lookback (1 trading year of daily
// bars) and levels window.
func New(fetcher collector.Fetcher) *Analyzer {
	return &Analyzer{
		Fetcher:      fetcher,
		LookbackDays: 252,
		LevelsWindow: levels.DefaultWindow,
	}
}

// Analyze fetches daily bars for the symbol and runs the pipeline.
func (a *Analyzer) Analyze(symbol string) (*model.AnalysisResult, error) {
	bars, err := a.Fetcher.FetchDailyBars(symbol, a.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	ps := model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	return a.AnalyzeSeries(&ps)
}

// AnalyzeSeries runs the pipeline over an already-fetched series.
// The input is not mutated; all derived series are newly allocated.
func (a *Analyzer) AnalyzeSeries(ps *model.PriceSeries) (*model.AnalysisResult, error) {
	bars, err := series.Normalize(ps.Bars)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", ps.Symbol, err)
	}

	ind := indicator.Compute(bars)

	sigs, err := signal.Generate(ind.MACD, ind.Signal, ind.RSI)
	if err != nil {
		return nil, fmt.Errorf("generate signals: %w", err)
	}

	lvl, err := levels.CalculateN(bars, a.LevelsWindow)
	if err != nil {
		return nil, fmt.Errorf("calculate levels: %w", err)
	}

	return &model.AnalysisResult{
		Symbol:      ps.Symbol,
		Bars:        bars,
		Indicators:  ind,
		Signals:     sigs,
		Levels:      lvl,
		Trend:       trend.Classify(&ind),
		Volume:      trend.ClassifyVolume(bars),
		GeneratedAt: time.Now(),
	}, nil
}
