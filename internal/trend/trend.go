// Package trend classifies directional bias and volume regime from the
// latest indicator values.
package trend

import (
	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// Volume regime thresholds on current/avg20 ratio.
const (
	HighVolumeRatio = 1.5
	LowVolumeRatio  = 0.7
)

// VolumeAvgPeriod is the lookback for the average-volume comparison.
const VolumeAvgPeriod = 20

// Classify derives per-horizon trend labels from the latest EMA stack:
// EMA9 vs EMA20 (short), EMA20 vs EMA50 (medium), EMA50 vs EMA200
// (long). The overall label counts bullish horizons: 3 is Strong
// Bullish, 2 Bullish, 1 Bearish, 0 Strong Bearish.
func Classify(ind *model.IndicatorSet) model.TrendReport {
	i := len(ind.EMA9) - 1

	short := bias(ind.EMA9[i], ind.EMA20[i])
	medium := bias(ind.EMA20[i], ind.EMA50[i])
	long := bias(ind.EMA50[i], ind.EMA200[i])

	bullish := 0
	for _, t := range []model.Trend{short, medium, long} {
		if t == model.TrendBullish {
			bullish++
		}
	}

	var overall model.Trend
	switch bullish {
	case 3:
		overall = model.TrendStrongBullish
	case 2:
		overall = model.TrendBullish
	case 1:
		overall = model.TrendBearish
	default:
		overall = model.TrendStrongBearish
	}

	return model.TrendReport{
		ShortTerm:  short,
		MediumTerm: medium,
		LongTerm:   long,
		Overall:    overall,
	}
}

func bias(fast, slow float64) model.Trend {
	if fast > slow {
		return model.TrendBullish
	}
	return model.TrendBearish
}

// ClassifyVolume compares the latest volume to its trailing 20-bar
// average. Ratio > 1.5 is High, 0.7-1.5 Normal, below 0.7 Low. With
// fewer than 20 bars the average uses all available bars; a zero
// average leaves the ratio NaN and the regime Normal.
func ClassifyVolume(bars []model.OHLCV) model.VolumeReport {
	if len(bars) == 0 {
		return model.VolumeReport{Regime: model.VolumeNormal}
	}

	start := len(bars) - VolumeAvgPeriod
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, b := range bars[start:] {
		sum += b.Volume
	}
	avg := sum / float64(len(bars)-start)
	current := bars[len(bars)-1].Volume
	ratio := current / avg // 0/0 -> NaN

	regime := model.VolumeNormal
	switch {
	case ratio > HighVolumeRatio:
		regime = model.VolumeHigh
	case ratio < LowVolumeRatio:
		regime = model.VolumeLow
	}

	return model.VolumeReport{
		Current: current,
		Avg20:   avg,
		Ratio:   ratio,
		Regime:  regime,
	}
}
