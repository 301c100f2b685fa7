package indicator

// MACD periods. 12/26/9 is the conventional parameterization and the
// only one the signal generator is calibrated for.
const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
)

// MACD computes the MACD line EMA(12)-EMA(26), its EMA(9) signal line,
// and the histogram (MACD - signal). All three series are defined at
// every index because the underlying EMAs have no warm-up.
func MACD(closes []float64) (macd, signal, histogram []float64) {
	fast := EMA(closes, MACDFast)
	slow := EMA(closes, MACDSlow)

	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = fast[i] - slow[i]
	}

	signal = EMA(macd, MACDSignal)

	histogram = make([]float64, len(closes))
	for i := range closes {
		histogram[i] = macd[i] - signal[i]
	}
	return macd, signal, histogram
}
