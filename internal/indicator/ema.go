package indicator

// EMA computes the exponential moving average with smoothing factor
// alpha = 2/(period+1), seeded by the first value:
//
//	EMA[0] = values[0]
//	EMA[t] = alpha*values[t] + (1-alpha)*EMA[t-1]
//
// There is no SMA warm-up window; the series is defined at every index.
// This is the ewm(span=period, adjust=False) recurrence and callers
// depending on numerical parity with it must not substitute an SMA seed.
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(period+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
