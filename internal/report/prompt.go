package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/messfin/zmtechstockAIagent/internal/model"
)

// BuildDataSummary renders the scalar analysis summary that gets
// substituted into the research prompt.
func BuildDataSummary(res *model.AnalysisResult) string {
	latest := res.Latest()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("TICKER: %s\n", res.Symbol))
	b.WriteString(fmt.Sprintf("CURRENT PRICE: $%.2f\n\n", latest.Close))

	b.WriteString("TECHNICAL INDICATORS:\n")
	b.WriteString(fmt.Sprintf("- RSI (14): %.2f\n", latest.RSI))
	b.WriteString(fmt.Sprintf("- MACD: %.4f\n", latest.MACD))
	b.WriteString(fmt.Sprintf("- MACD Signal: %.4f\n", latest.Signal))
	b.WriteString(fmt.Sprintf("- MACD Histogram: %.4f\n", latest.Histogram))
	b.WriteString(fmt.Sprintf("- EMA9: $%.2f\n", latest.EMA9))
	b.WriteString(fmt.Sprintf("- EMA20: $%.2f\n", latest.EMA20))
	b.WriteString(fmt.Sprintf("- EMA50: $%.2f\n", latest.EMA50))
	b.WriteString(fmt.Sprintf("- EMA200: $%.2f\n", latest.EMA200))
	b.WriteString(fmt.Sprintf("- VWAP: $%.2f\n", latest.VWAP))
	b.WriteString(fmt.Sprintf("- Bollinger Upper: $%.2f\n", latest.BBUpper))
	b.WriteString(fmt.Sprintf("- Bollinger Middle: $%.2f\n", latest.BBMiddle))
	b.WriteString(fmt.Sprintf("- Bollinger Lower: $%.2f\n", latest.BBLower))
	b.WriteString(fmt.Sprintf("- ATR: $%.2f\n", latest.ATR))
	b.WriteString(fmt.Sprintf("- Stochastic %%K: %.2f\n", latest.StochK))
	b.WriteString(fmt.Sprintf("- Stochastic %%D: %.2f\n\n", latest.StochD))

	b.WriteString("TREND ANALYSIS:\n")
	b.WriteString(fmt.Sprintf("- Short-term: %s\n", res.Trend.ShortTerm))
	b.WriteString(fmt.Sprintf("- Medium-term: %s\n", res.Trend.MediumTerm))
	b.WriteString(fmt.Sprintf("- Long-term: %s\n", res.Trend.LongTerm))
	b.WriteString(fmt.Sprintf("- Overall: %s\n\n", res.Trend.Overall))

	b.WriteString("VOLUME ANALYSIS:\n")
	b.WriteString(fmt.Sprintf("- Current Volume: %.0f\n", res.Volume.Current))
	b.WriteString(fmt.Sprintf("- 20-Day Avg Volume: %.0f\n", res.Volume.Avg20))
	b.WriteString(fmt.Sprintf("- Volume Ratio: %.2fx\n", res.Volume.Ratio))
	b.WriteString(fmt.Sprintf("- Volume Trend: %s\n\n", res.Volume.Regime))

	b.WriteString("SUPPORT & RESISTANCE LEVELS:\n")
	b.WriteString(fmt.Sprintf("- Resistance 3: $%.2f\n", res.Levels.R3))
	b.WriteString(fmt.Sprintf("- Resistance 2: $%.2f\n", res.Levels.R2))
	b.WriteString(fmt.Sprintf("- Resistance 1: $%.2f\n", res.Levels.R1))
	b.WriteString(fmt.Sprintf("- Pivot Point: $%.2f\n", res.Levels.Pivot))
	b.WriteString(fmt.Sprintf("- Support 1: $%.2f\n", res.Levels.S1))
	b.WriteString(fmt.Sprintf("- Support 2: $%.2f\n", res.Levels.S2))
	b.WriteString(fmt.Sprintf("- Support 3: $%.2f\n", res.Levels.S3))

	return b.String()
}

// BuildPrompt assembles the full equity-research prompt for the
// generative model, embedding the data summary.
func BuildPrompt(res *model.AnalysisResult) string {
	latest := res.Latest()
	return fmt.Sprintf(`You are a senior equity research analyst at a top-tier investment bank. Your task is to analyze the following stock data and provide a comprehensive research note with a clear Buy/Hold/Sell recommendation.

STOCK DATA:
%s

INSTRUCTIONS:
1. Analyze all the technical data provided
2. Provide a clear recommendation (BUY, HOLD, or SELL) with a conviction level (High/Medium/Low)
3. Use professional financial terminology (e.g., valuation compression, technical consolidation, risk-reward profile)
4. Structure your response as an EQUITY RESEARCH NOTE for ticker %s at price $%.2f dated %s, with sections:
   I. RECOMMENDATION
   II. INVESTMENT THESIS
   III. TECHNICAL ANALYSIS (RSI conditions, MACD momentum, moving average alignment, volume patterns, Bollinger positioning)
   IV. RISK FACTORS
   V. PRICE TARGET & TIMELINE
   VI. KEY LEVELS (resistance R1-R3, support S1-S3, pivot point, trading strategy with entry/stop/target)

Remember to:
- Use specific numbers from the data
- Be authoritative and professional
- Provide actionable insights
- Justify your recommendation with concrete evidence
`, BuildDataSummary(res), res.Symbol, latest.Close, time.Now().Format("January 2, 2006"))
}
