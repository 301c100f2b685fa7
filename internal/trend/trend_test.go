package trend

import (
	"math"
	"testing"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

func indWithEMAs(ema9, ema20, ema50, ema200 float64) *model.IndicatorSet {
	return &model.IndicatorSet{
		EMA9:   []float64{0, ema9},
		EMA20:  []float64{0, ema20},
		EMA50:  []float64{0, ema50},
		EMA200: []float64{0, ema200},
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name                        string
		ema9, ema20, ema50, ema200  float64
		short, medium, long, overall model.Trend
	}{
		{
			"full bullish stack", 110, 108, 105, 100,
			model.TrendBullish, model.TrendBullish, model.TrendBullish, model.TrendStrongBullish,
		},
		{
			"full bearish stack", 100, 105, 108, 110,
			model.TrendBearish, model.TrendBearish, model.TrendBearish, model.TrendStrongBearish,
		},
		{
			"short-term pullback", 104, 105, 103, 100,
			model.TrendBearish, model.TrendBullish, model.TrendBullish, model.TrendBullish,
		},
		{
			"long-term only", 100, 101, 105, 103,
			model.TrendBearish, model.TrendBearish, model.TrendBullish, model.TrendBearish,
		},
		{
			"equal EMAs lean bearish", 100, 100, 100, 100,
			model.TrendBearish, model.TrendBearish, model.TrendBearish, model.TrendStrongBearish,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Classify(indWithEMAs(c.ema9, c.ema20, c.ema50, c.ema200))
			if r.ShortTerm != c.short {
				t.Errorf("short = %s, want %s", r.ShortTerm, c.short)
			}
			if r.MediumTerm != c.medium {
				t.Errorf("medium = %s, want %s", r.MediumTerm, c.medium)
			}
			if r.LongTerm != c.long {
				t.Errorf("long = %s, want %s", r.LongTerm, c.long)
			}
			if r.Overall != c.overall {
				t.Errorf("overall = %s, want %s", r.Overall, c.overall)
			}
		})
	}
}

func volumeBars(avgVol, lastVol float64) []model.OHLCV {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, VolumeAvgPeriod)
	for i := range bars {
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Close: 100, Volume: avgVol}
	}
	bars[len(bars)-1].Volume = lastVol
	return bars
}

func TestClassifyVolume_Regimes(t *testing.T) {
	// Average over 20 bars of (19*1000 + last)/20.
	cases := []struct {
		name    string
		lastVol float64
		regime  model.VolumeRegime
	}{
		{"spike", 20000, model.VolumeHigh},   // ratio 20000/1950 > 1.5
		{"steady", 1000, model.VolumeNormal}, // ratio 1.0
		{"dried up", 100, model.VolumeLow},   // ratio 100/955 < 0.7
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := ClassifyVolume(volumeBars(1000, c.lastVol))
			if r.Regime != c.regime {
				t.Errorf("regime = %s (ratio %.2f), want %s", r.Regime, r.Ratio, c.regime)
			}
		})
	}
}

func TestClassifyVolume_RatioAndAverage(t *testing.T) {
	bars := volumeBars(1000, 3000)
	r := ClassifyVolume(bars)

	wantAvg := (19*1000.0 + 3000) / 20
	if r.Avg20 != wantAvg {
		t.Errorf("avg = %v, want %v", r.Avg20, wantAvg)
	}
	if r.Current != 3000 {
		t.Errorf("current = %v, want 3000", r.Current)
	}
	if r.Ratio != 3000/wantAvg {
		t.Errorf("ratio = %v, want %v", r.Ratio, 3000/wantAvg)
	}
}

func TestClassifyVolume_ShortHistoryUsesAllBars(t *testing.T) {
	bars := volumeBars(1000, 1000)[:5]
	r := ClassifyVolume(bars)
	if r.Avg20 != 1000 {
		t.Errorf("avg over short history = %v, want 1000", r.Avg20)
	}
	if r.Regime != model.VolumeNormal {
		t.Errorf("regime = %s, want Normal", r.Regime)
	}
}

func TestClassifyVolume_ZeroVolume(t *testing.T) {
	bars := volumeBars(0, 0)
	r := ClassifyVolume(bars)
	if !math.IsNaN(r.Ratio) {
		t.Errorf("ratio = %v, want NaN for zero average", r.Ratio)
	}
	if r.Regime != model.VolumeNormal {
		t.Errorf("regime = %s, want Normal when ratio undefined", r.Regime)
	}
}

func TestClassifyVolume_Empty(t *testing.T) {
	r := ClassifyVolume(nil)
	if r.Regime != model.VolumeNormal {
		t.Errorf("regime = %s, want Normal", r.Regime)
	}
}
