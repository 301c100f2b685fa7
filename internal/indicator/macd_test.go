package indicator

import "testing"

func TestMACD_PositiveOnRisingSeries(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	macd, signal, hist := MACD(closes)

	// After the slow+signal warm-up the fast EMA leads the slow one and
	// the MACD line sits above its own signal.
	for i := MACDSlow + MACDSignal; i < len(closes); i++ {
		if macd[i] <= 0 {
			t.Fatalf("macd[%d] = %v, want > 0 on rising series", i, macd[i])
		}
		if macd[i] <= signal[i] {
			t.Fatalf("macd[%d] = %v not above signal %v", i, macd[i], signal[i])
		}
		if hist[i] != macd[i]-signal[i] {
			t.Fatalf("histogram[%d] mismatch", i)
		}
	}
}

func TestMACD_DefinedAtEveryIndex(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 98}
	macd, signal, _ := MACD(closes)
	if macd[0] != 0 {
		t.Errorf("macd[0] = %v, want 0 (both EMAs seed at the first close)", macd[0])
	}
	if signal[0] != 0 {
		t.Errorf("signal[0] = %v, want 0", signal[0])
	}
}
