package series

import (
	"errors"
	"testing"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

func mkBars(n int) []model.OHLCV {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = model.OHLCV{
			Time: base.AddDate(0, 0, i),
			Open: p, High: p + 1, Low: p - 1, Close: p, Volume: 1000,
		}
	}
	return bars
}

func TestNormalize_SortsAscending(t *testing.T) {
	bars := mkBars(30)
	// shuffle: reverse order
	rev := make([]model.OHLCV, len(bars))
	for i, b := range bars {
		rev[len(bars)-1-i] = b
	}

	out, err := Normalize(rev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(out); i++ {
		if !out[i].Time.After(out[i-1].Time) {
			t.Fatalf("bars not strictly ascending at %d", i)
		}
	}
}

func TestNormalize_DropsDuplicateTimestamps(t *testing.T) {
	bars := mkBars(30)
	dup := append([]model.OHLCV{}, bars...)
	clone := bars[10]
	clone.Close = 999 // later duplicate must lose
	dup = append(dup, clone)

	out, err := Normalize(dup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 30 {
		t.Fatalf("expected 30 bars after dedupe, got %d", len(out))
	}
	if out[10].Close == 999 {
		t.Error("duplicate should keep first occurrence")
	}
}

func TestNormalize_MinBarBoundary(t *testing.T) {
	if _, err := Normalize(mkBars(26)); err != nil {
		t.Errorf("26 bars should pass: %v", err)
	}
	_, err := Normalize(mkBars(25))
	if !errors.Is(err, ErrInsufficientBars) {
		t.Errorf("25 bars should fail with ErrInsufficientBars, got %v", err)
	}
	_, err = Normalize(nil)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("empty input should fail with ErrNoData, got %v", err)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	bars := mkBars(30)
	// reversed input so sorting would have to move elements
	rev := make([]model.OHLCV, len(bars))
	for i, b := range bars {
		rev[len(bars)-1-i] = b
	}
	first := rev[0]

	if _, err := Normalize(rev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev[0] != first {
		t.Error("Normalize mutated the caller's slice")
	}
}
