// Package series validates and shapes raw OHLCV data before indicator
// computation. Normalization never mutates the caller's slice.
package series

import (
	"errors"
	"fmt"
	"sort"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// DefaultMinBars is the hard minimum bar count. MACD needs an EMA(26)
// and the 26-bar floor matches what the indicator engine can make use of.
const DefaultMinBars = 26

var (
	// ErrNoData indicates an empty input series.
	ErrNoData = errors.New("series: no bars")

	// ErrInsufficientBars indicates fewer bars than the hard minimum.
	ErrInsufficientBars = errors.New("series: insufficient bars")
)

// Normalize returns a new bar slice sorted ascending by timestamp with
// duplicate timestamps removed (first occurrence wins), enforcing
// DefaultMinBars.
func Normalize(bars []model.OHLCV) ([]model.OHLCV, error) {
	return NormalizeN(bars, DefaultMinBars)
}

// NormalizeN is Normalize with a caller-chosen minimum bar count.
func NormalizeN(bars []model.OHLCV, minBars int) ([]model.OHLCV, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	out := make([]model.OHLCV, len(bars))
	copy(out, bars)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	// Drop duplicate timestamps, keeping the first occurrence.
	dedup := out[:1]
	for _, b := range out[1:] {
		if b.Time.Equal(dedup[len(dedup)-1].Time) {
			continue
		}
		dedup = append(dedup, b)
	}

	if len(dedup) < minBars {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientBars, len(dedup), minBars)
	}
	return dedup, nil
}
