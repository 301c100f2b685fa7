package indicator

// RSI computes the Relative Strength Index using a plain rolling mean of
// gains and losses over the period, not Wilder's smoothing. Positions
// before the first full window (index < period) are NaN.
//
// When the window's average loss is zero with positive gains, RS is +Inf
// and RSI resolves to 100. A fully flat window gives 0/0 and the value
// stays NaN; both cases are defined outputs, never a panic.
func RSI(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}

	// Per-bar deltas; index 0 has no predecessor.
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	// First full window of deltas covers indices 1..period, so the first
	// defined RSI is at index == period.
	for i := period; i < len(closes); i++ {
		var avgGain, avgLoss float64
		for j := i - period + 1; j <= i; j++ {
			avgGain += gains[j]
			avgLoss += losses[j]
		}
		avgGain /= float64(period)
		avgLoss /= float64(period)

		rs := avgGain / avgLoss // IEEE-754: x/0 -> +Inf, 0/0 -> NaN
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
