// Package export serializes the analysis output table to CSV and loads
// it back. Floats are written with strconv's shortest round-trippable
// representation so re-loading reproduces identical values; NaN cells
// are written empty, signal flags as 1/0.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

var header = []string{
	"Date", "Open", "High", "Low", "Close", "Volume",
	"EMA9", "EMA20", "EMA50", "EMA100", "EMA200",
	"MACD", "Signal", "Histogram", "RSI", "VWAP",
	"BB_Upper", "BB_Middle", "BB_Lower", "ATR",
	"Stoch_K", "Stoch_D",
	"HA_Open", "HA_High", "HA_Low", "HA_Close",
	"Buy_Signal", "Sell_Signal",
}

const dateLayout = "2006-01-02"

// WriteCSV writes the full output table (bars, indicator columns, signal
// flags) to w.
func WriteCSV(w io.Writer, res *model.AnalysisResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	ind := &res.Indicators
	for i, b := range res.Bars {
		row := []string{
			b.Time.Format(dateLayout),
			formatFloat(b.Open), formatFloat(b.High), formatFloat(b.Low),
			formatFloat(b.Close), formatFloat(b.Volume),
			formatFloat(ind.EMA9[i]), formatFloat(ind.EMA20[i]), formatFloat(ind.EMA50[i]),
			formatFloat(ind.EMA100[i]), formatFloat(ind.EMA200[i]),
			formatFloat(ind.MACD[i]), formatFloat(ind.Signal[i]), formatFloat(ind.Histogram[i]),
			formatFloat(ind.RSI[i]), formatFloat(ind.VWAP[i]),
			formatFloat(ind.BBUpper[i]), formatFloat(ind.BBMiddle[i]), formatFloat(ind.BBLower[i]),
			formatFloat(ind.ATR[i]),
			formatFloat(ind.StochK[i]), formatFloat(ind.StochD[i]),
			formatFloat(ind.HAOpen[i]), formatFloat(ind.HAHigh[i]), formatFloat(ind.HALow[i]),
			formatFloat(ind.HAClose[i]),
			formatBool(res.Signals.Buy[i]), formatBool(res.Signals.Sell[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the output table to a CSV file.
func WriteFile(path string, res *model.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, res); err != nil {
		return err
	}
	return f.Close()
}

// ReadCSV loads a table previously written by WriteCSV. It reconstructs
// the bars, indicator columns, and signal flags; levels and trend are
// scalar summaries and are not part of the table.
func ReadCSV(r io.Reader) (*model.AnalysisResult, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("read csv: missing header")
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("read csv: expected %d columns, got %d", len(header), len(records[0]))
	}

	n := len(records) - 1
	res := &model.AnalysisResult{
		Bars: make([]model.OHLCV, n),
		Indicators: model.IndicatorSet{
			EMA9: make([]float64, n), EMA20: make([]float64, n), EMA50: make([]float64, n),
			EMA100: make([]float64, n), EMA200: make([]float64, n),
			MACD: make([]float64, n), Signal: make([]float64, n), Histogram: make([]float64, n),
			RSI: make([]float64, n), VWAP: make([]float64, n),
			BBUpper: make([]float64, n), BBMiddle: make([]float64, n), BBLower: make([]float64, n),
			ATR:    make([]float64, n),
			StochK: make([]float64, n), StochD: make([]float64, n),
			HAOpen: make([]float64, n), HAHigh: make([]float64, n),
			HALow: make([]float64, n), HAClose: make([]float64, n),
		},
		Signals: model.SignalSet{Buy: make([]bool, n), Sell: make([]bool, n)},
	}

	ind := &res.Indicators
	for i, rec := range records[1:] {
		t, err := time.Parse(dateLayout, rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date %q: %w", i, rec[0], err)
		}
		vals := make([]float64, 25)
		for c := 1; c <= 25; c++ {
			v, err := parseFloat(rec[c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %s: %w", i, header[c], err)
			}
			vals[c-1] = v
		}
		res.Bars[i] = model.OHLCV{
			Time: t, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3], Volume: vals[4],
		}
		ind.EMA9[i], ind.EMA20[i], ind.EMA50[i], ind.EMA100[i], ind.EMA200[i] = vals[5], vals[6], vals[7], vals[8], vals[9]
		ind.MACD[i], ind.Signal[i], ind.Histogram[i] = vals[10], vals[11], vals[12]
		ind.RSI[i], ind.VWAP[i] = vals[13], vals[14]
		ind.BBUpper[i], ind.BBMiddle[i], ind.BBLower[i] = vals[15], vals[16], vals[17]
		ind.ATR[i] = vals[18]
		ind.StochK[i], ind.StochD[i] = vals[19], vals[20]
		ind.HAOpen[i], ind.HAHigh[i], ind.HALow[i], ind.HAClose[i] = vals[21], vals[22], vals[23], vals[24]
		res.Signals.Buy[i] = rec[26] == "1"
		res.Signals.Sell[i] = rec[27] == "1"
	}
	return res, nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
