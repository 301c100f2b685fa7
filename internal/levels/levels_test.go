package levels

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

func windowBars(high, low, lastClose float64, n int) []model.OHLCV {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: base.AddDate(0, 0, i),
			Open: (high + low) / 2, High: low + (high-low)/2, Low: low + (high-low)/4,
			Close: (high + low) / 2, Volume: 1000,
		}
	}
	// Put the window extremes on interior bars and the close on the last.
	bars[n/2].High = high
	bars[n/3].Low = low
	bars[n-1].Close = lastClose
	return bars
}

func TestCalculate_PivotScenario(t *testing.T) {
	// high=113, low=99, close=107 -> pivot 106.333, r1 113.667, s1 99.667
	bars := windowBars(113, 99, 107, 60)
	lvl, err := Calculate(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"pivot", lvl.Pivot, 106.333},
		{"r1", lvl.R1, 113.667},
		{"r2", lvl.R2, 120.333},
		{"r3", lvl.R3, 127.667},
		{"s1", lvl.S1, 99.667},
		{"s2", lvl.S2, 92.333},
		{"s3", lvl.S3, 85.667},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-3 {
			t.Errorf("%s = %.4f, want %.3f", c.name, c.got, c.want)
		}
	}
}

func TestCalculateN_WindowExcludesOlderBars(t *testing.T) {
	bars := windowBars(113, 99, 107, 60)
	// Prepend an extreme bar that must fall outside the 60-bar window.
	old := bars[0]
	old.Time = old.Time.AddDate(0, 0, -1)
	old.High = 500
	old.Low = 1
	all := append([]model.OHLCV{old}, bars...)

	lvl, err := CalculateN(all, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(lvl.Pivot-106.333) > 1e-3 {
		t.Errorf("pivot = %.4f, old bars leaked into the window", lvl.Pivot)
	}
}

func TestCalculateN_DegradesToAvailableBars(t *testing.T) {
	// Fewer bars than the window: uses all of them instead of erroring.
	bars := windowBars(113, 99, 107, 30)
	lvl, err := CalculateN(bars, 60)
	if err != nil {
		t.Fatalf("expected graceful degradation, got %v", err)
	}
	if math.Abs(lvl.Pivot-106.333) > 1e-3 {
		t.Errorf("pivot = %.4f, want 106.333", lvl.Pivot)
	}
}

func TestCalculate_EmptyInput(t *testing.T) {
	if _, err := Calculate(nil); !errors.Is(err, ErrNoBars) {
		t.Errorf("expected ErrNoBars, got %v", err)
	}
}
