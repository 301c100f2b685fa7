// Package levels computes pivot-point support and resistance from a
// trailing window of bars.
package levels

import (
	"errors"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// DefaultWindow is the trailing bar count used for the high/low scan.
const DefaultWindow = 60

// ErrNoBars indicates an empty input series.
var ErrNoBars = errors.New("levels: no bars")

// Calculate computes the classic pivot-point level set from the trailing
// DefaultWindow bars and the latest close.
func Calculate(bars []model.OHLCV) (model.PriceLevels, error) {
	return CalculateN(bars, DefaultWindow)
}

// CalculateN computes the level set over the trailing window bars. When
// fewer than window bars exist, the scan degrades to all available bars
// instead of erroring; only an empty series is an error. The pivot is
// (high+low+close)/3 with high/low taken over the window and close from
// the most recent bar.
func CalculateN(bars []model.OHLCV, window int) (model.PriceLevels, error) {
	if len(bars) == 0 {
		return model.PriceLevels{}, ErrNoBars
	}

	start := len(bars) - window
	if start < 0 {
		start = 0
	}

	high := bars[start].High
	low := bars[start].Low
	for _, b := range bars[start:] {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	close := bars[len(bars)-1].Close

	pivot := (high + low + close) / 3
	return model.PriceLevels{
		Pivot: pivot,
		R1:    2*pivot - low,
		R2:    pivot + (high - low),
		R3:    high + 2*(pivot-low),
		S1:    2*pivot - high,
		S2:    pivot - (high - low),
		S3:    low - 2*(high-pivot),
	}, nil
}
