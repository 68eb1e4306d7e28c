package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
)

// Rating qualifies a metric value against usual thresholds.
type Rating string

const (
	Good    Rating = "good"
	Fair    Rating = "fair"
	Poor    Rating = "poor"
	Unrated Rating = ""
)

// band rates x as Good above good, Poor at or below bad, Fair otherwise.
func band(x, good, bad float64) Rating {
	switch {
	case !analytics.Defined(x):
		return Unrated
	case x >= good:
		return Good
	case x <= bad:
		return Poor
	default:
		return Fair
	}
}

// Ratings of the summary metrics.

func RateSharpe(x float64) Rating           { return band(x, 1, 0.5) }
func RateSortino(x float64) Rating          { return band(x, 1, 0.5) }
func RateDrawdown(x float64) Rating         { return band(x, -0.10, -0.30) }
func RateAnnualizedReturn(x float64) Rating { return band(x, 0.08, 0.02) }
func RateAlpha(x float64) Rating            { return band(x, 0, -0.05) }
func RateEffectiveN(x float64) Rating       { return band(x, 5, 2) }

// RateBeta is Good within 0.9..1.1, Poor outside 0.7..1.3.
func RateBeta(x float64) Rating {
	switch {
	case !analytics.Defined(x):
		return Unrated
	case 0.9 <= x && x <= 1.1:
		return Good
	case x < 0.7 || x > 1.3:
		return Poor
	default:
		return Fair
	}
}

// RateTurnover is Good up to 100%, Poor above 200%.
func RateTurnover(x float64) Rating {
	switch {
	case !analytics.Defined(x):
		return Unrated
	case x <= 1:
		return Good
	case x <= 2:
		return Fair
	default:
		return Poor
	}
}

// metricRow is a formatted line of the summary table.
type metricRow struct {
	label string
	value func(analytics.Summary) (string, Rating)
}

var summaryRows = []metricRow{
	{"Sharpe Ratio", func(s analytics.Summary) (string, Rating) { return ratio(s.SharpeRatio), RateSharpe(s.SharpeRatio) }},
	{"Sortino Ratio", func(s analytics.Summary) (string, Rating) { return ratio(s.SortinoRatio), RateSortino(s.SortinoRatio) }},
	{"Max Drawdown", func(s analytics.Summary) (string, Rating) { return pct(s.MaxDrawdown), RateDrawdown(s.MaxDrawdown) }},
	{"Annualized Return", func(s analytics.Summary) (string, Rating) {
		return pct(s.AnnualizedReturn), RateAnnualizedReturn(s.AnnualizedReturn)
	}},
	{"Effective N", func(s analytics.Summary) (string, Rating) {
		if s.Assets == 0 {
			return ratio(s.EffectiveN), RateEffectiveN(s.EffectiveN)
		}
		return fmt.Sprintf("%s / %d", ratio(s.EffectiveN), s.Assets), RateEffectiveN(s.EffectiveN)
	}},
	{"Turnover", func(s analytics.Summary) (string, Rating) { return pct(s.Turnover), RateTurnover(s.Turnover) }},
	{"Alpha", func(s analytics.Summary) (string, Rating) { return pct(s.Alpha), RateAlpha(s.Alpha) }},
	{"Beta", func(s analytics.Summary) (string, Rating) { return ratio(s.Beta), RateBeta(s.Beta) }},
}

// SummaryMarkdown renders the key metrics of the portfolio, side by side with
// the ones of a benchmark when it is not nil. reference names the benchmark
// used for alpha and beta.
func SummaryMarkdown(portfolio analytics.Summary, benchmark *analytics.Summary, reference string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance on %s", portfolio.AsOf))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Metric", portfolio.Name, "Rating"},
	}
	if benchmark != nil {
		table.Alignment = append(table.Alignment, md.AlignRight, md.AlignLeft)
		table.Header = append(table.Header, benchmark.Name, "Rating")
	}
	for _, r := range summaryRows {
		v, rating := r.value(portfolio)
		row := []string{r.label, v, string(rating)}
		if benchmark != nil {
			v, rating := r.value(*benchmark)
			row = append(row, v, string(rating))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	if reference != "" {
		doc.PlainText(fmt.Sprintf("Alpha and Beta are measured against %s.", md.Bold(reference)))
	}
	return doc.String()
}
