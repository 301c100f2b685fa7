package model

import "time"

// Trend labels a directional bias for one horizon.
type Trend string

const (
	TrendBullish       Trend = "Bullish"
	TrendBearish       Trend = "Bearish"
	TrendStrongBullish Trend = "Strong Bullish"
	TrendStrongBearish Trend = "Strong Bearish"
)

// VolumeRegime labels current volume relative to its 20-bar average.
type VolumeRegime string

const (
	VolumeHigh   VolumeRegime = "High"
	VolumeNormal VolumeRegime = "Normal"
	VolumeLow    VolumeRegime = "Low"
)

// IndicatorSet holds every derived indicator series, aligned with the
// normalized bars. Leading entries that lack a full window are NaN.
type IndicatorSet struct {
	EMA9   []float64
	EMA20  []float64
	EMA50  []float64
	EMA100 []float64
	EMA200 []float64

	MACD      []float64
	Signal    []float64
	Histogram []float64

	RSI  []float64
	VWAP []float64

	BBUpper  []float64
	BBMiddle []float64
	BBLower  []float64

	ATR []float64

	StochK []float64
	StochD []float64

	HAOpen  []float64
	HAHigh  []float64
	HALow   []float64
	HAClose []float64
}

// SignalSet holds discrete buy/sell flags aligned with the bars.
// At most one of Buy[t]/Sell[t] is true for any t.
type SignalSet struct {
	Buy  []bool
	Sell []bool
}

// PriceLevels is the pivot-point support/resistance set computed from a
// trailing window of bars plus the latest close.
type PriceLevels struct {
	Pivot float64
	R1    float64
	R2    float64
	R3    float64
	S1    float64
	S2    float64
	S3    float64
}

// TrendReport classifies the trend per horizon from the latest EMA stack.
type TrendReport struct {
	ShortTerm  Trend // EMA9 vs EMA20
	MediumTerm Trend // EMA20 vs EMA50
	LongTerm   Trend // EMA50 vs EMA200
	Overall    Trend
}

// VolumeReport compares the latest volume against its 20-bar average.
type VolumeReport struct {
	Current float64
	Avg20   float64
	Ratio   float64
	Regime  VolumeRegime
}

// AnalysisResult is the complete output of one analysis run.
type AnalysisResult struct {
	Symbol      string
	Bars        []OHLCV // normalized
	Indicators  IndicatorSet
	Signals     SignalSet
	Levels      PriceLevels
	Trend       TrendReport
	Volume      VolumeReport
	GeneratedAt time.Time
}

// LatestIndicators is the scalar snapshot of the most recent bar's
// indicator values, used for reports and persistence.
type LatestIndicators struct {
	Close     float64
	RSI       float64
	MACD      float64
	Signal    float64
	Histogram float64
	EMA9      float64
	EMA20     float64
	EMA50     float64
	EMA200    float64
	BBUpper   float64
	BBMiddle  float64
	BBLower   float64
	ATR       float64
	StochK    float64
	StochD    float64
	VWAP      float64
}

// Latest returns the scalar indicator snapshot at the last bar.
func (r *AnalysisResult) Latest() LatestIndicators {
	i := len(r.Bars) - 1
	return LatestIndicators{
		Close:     r.Bars[i].Close,
		RSI:       r.Indicators.RSI[i],
		MACD:      r.Indicators.MACD[i],
		Signal:    r.Indicators.Signal[i],
		Histogram: r.Indicators.Histogram[i],
		EMA9:      r.Indicators.EMA9[i],
		EMA20:     r.Indicators.EMA20[i],
		EMA50:     r.Indicators.EMA50[i],
		EMA200:    r.Indicators.EMA200[i],
		BBUpper:   r.Indicators.BBUpper[i],
		BBMiddle:  r.Indicators.BBMiddle[i],
		BBLower:   r.Indicators.BBLower[i],
		ATR:       r.Indicators.ATR[i],
		StochK:    r.Indicators.StochK[i],
		StochD:    r.Indicators.StochD[i],
		VWAP:      r.Indicators.VWAP[i],
	}
}

// SignalCounts returns the total number of buy and sell flags in the run.
func (r *AnalysisResult) SignalCounts() (buys, sells int) {
	for _, b := range r.Signals.Buy {
		if b {
			buys++
		}
	}
	for _, s := range r.Signals.Sell {
		if s {
			sells++
		}
	}
	return buys, sells
}
