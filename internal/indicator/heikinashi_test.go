package indicator

import (
	"testing"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

func haBars() []model.OHLCV {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.OHLCV{
		{Time: base, Open: 10, High: 12, Low: 9, Close: 11},
		{Time: base.AddDate(0, 0, 1), Open: 11, High: 13, Low: 10, Close: 12},
		{Time: base.AddDate(0, 0, 2), Open: 12, High: 14, Low: 11, Close: 13},
	}
}

func TestHeikinAshi_Recurrence(t *testing.T) {
	haOpen, haHigh, haLow, haClose := HeikinAshi(haBars())

	// Hand-computed values.
	wantClose := []float64{10.5, 11.5, 12.5}
	wantOpen := []float64{10.5, 10.5, 11}
	wantHigh := []float64{12, 13, 14}
	wantLow := []float64{9, 10, 11}

	for i := range wantClose {
		if haClose[i] != wantClose[i] {
			t.Errorf("haClose[%d] = %v, want %v", i, haClose[i], wantClose[i])
		}
		if haOpen[i] != wantOpen[i] {
			t.Errorf("haOpen[%d] = %v, want %v", i, haOpen[i], wantOpen[i])
		}
		if haHigh[i] != wantHigh[i] {
			t.Errorf("haHigh[%d] = %v, want %v", i, haHigh[i], wantHigh[i])
		}
		if haLow[i] != wantLow[i] {
			t.Errorf("haLow[%d] = %v, want %v", i, haLow[i], wantLow[i])
		}
	}
}

func TestHeikinAshi_Deterministic(t *testing.T) {
	bars := haBars()
	o1, h1, l1, c1 := HeikinAshi(bars)
	o2, h2, l2, c2 := HeikinAshi(bars)
	for i := range bars {
		if o1[i] != o2[i] || h1[i] != h2[i] || l1[i] != l2[i] || c1[i] != c2[i] {
			t.Fatalf("recomputation diverged at %d", i)
		}
	}
}

func TestHeikinAshi_Empty(t *testing.T) {
	o, h, l, c := HeikinAshi(nil)
	if len(o) != 0 || len(h) != 0 || len(l) != 0 || len(c) != 0 {
		t.Error("expected empty output for empty input")
	}
}
