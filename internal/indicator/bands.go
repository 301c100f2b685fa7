package indicator

// Bollinger Band defaults.
const (
	BBPeriod = 20
	BBWidth  = 2.0
)

// BollingerBands computes the 20-bar middle SMA and upper/lower bands at
// +-2 rolling sample standard deviations (ddof=1). Positions before the
// first full window are NaN.
func BollingerBands(closes []float64) (upper, middle, lower []float64) {
	middle = SMA(closes, BBPeriod)
	std := RollingStd(closes, BBPeriod)

	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = middle[i] + BBWidth*std[i]
		lower[i] = middle[i] - BBWidth*std[i]
	}
	return upper, middle, lower
}
