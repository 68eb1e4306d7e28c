package renderer

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	md "github.com/nao1215/markdown"
)

// Overview is the general view of the portfolio on a reporting date.
type Overview struct {
	AsOf     date.Date
	Window   analytics.Window
	Currency string
	Value    analytics.Money // latest portfolio value
	Return   float64         // portfolio total return over the window
	// Benchmark total returns over the window, in name order.
	Benchmarks []analytics.AssetReturn
	Weights    []Weight // latest weights, largest first
	Confidence float64  // of the VaR, e.g. 0.95
	VaR        analytics.Horizons
	Best       *analytics.AssetReturn
	Worst      *analytics.AssetReturn
}

// Weight is the weight of an asset in an allocation.
type Weight struct {
	Asset  string
	Weight float64
}

// OverviewInput gathers the data of the general view.
type OverviewInput struct {
	Portfolio   *analytics.Series
	Benchmarks  analytics.Benchmarks
	Allocations *analytics.Table // may be nil
	Prices      *analytics.Table // may be nil
	AsOf        date.Date
	Window      analytics.Window
	Alpha       float64 // VaR tail probability
	Currency    string
}

// NewOverview computes the general view. The VaR is computed over the whole
// history up to the reporting date, regardless of the window.
func NewOverview(in OverviewInput) (*Overview, error) {
	window := in.Window.Apply(in.Portfolio, in.AsOf)
	last, err := analytics.LastValue(window)
	if err != nil {
		return nil, err
	}
	o := &Overview{
		AsOf:     in.AsOf,
		Window:   in.Window,
		Currency: in.Currency,
		Value:    analytics.M(last, in.Currency),
	}
	o.Return, _ = analytics.TotalReturn(window)

	for _, name := range in.Benchmarks.Names() {
		b := in.Benchmarks[name].Window(in.Window, in.AsOf)
		if b.Values.Len() == 0 {
			continue
		}
		r, _ := b.TotalReturn()
		o.Benchmarks = append(o.Benchmarks, analytics.AssetReturn{Asset: name, Return: r})
	}

	if in.Allocations != nil {
		if i, ok := in.Allocations.IndexAsOf(in.AsOf); ok {
			for asset, w := range in.Allocations.Row(i) {
				o.Weights = append(o.Weights, Weight{Asset: asset, Weight: w})
			}
			slices.SortFunc(o.Weights, func(a, b Weight) int {
				if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
					return c
				}
				return cmp.Compare(a.Asset, b.Asset)
			})
		}
	}

	o.Confidence = 1 - in.Alpha
	o.VaR = analytics.VaRHorizons(analytics.Returns(in.Portfolio.Until(in.AsOf)), in.Alpha)

	if in.Prices != nil {
		first, _ := window.First()
		best, worst, err := analytics.BestAndWorst(in.Prices.Until(in.AsOf).Since(first))
		if err == nil {
			o.Best, o.Worst = &best, &worst
		}
	}
	return o, nil
}

// RiskLevel qualifies a VaR loss fraction: up to 3% is low, up to 7% moderate.
func RiskLevel(loss float64) string {
	switch {
	case !analytics.Defined(loss):
		return "N/A"
	case loss <= 0.03:
		return "low"
	case loss <= 0.07:
		return "moderate"
	default:
		return "excessive"
	}
}

// OverviewMarkdown renders the general view.
func OverviewMarkdown(o *Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Overview on %s", o.AsOf))
	doc.PlainText(fmt.Sprintf("Portfolio Value: %s", md.Bold(o.Value.String())))

	doc.H2(fmt.Sprintf("Cumulative Return (%s)", o.Window))
	returns := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Series", "Return"},
		Rows:      [][]string{{"Portfolio", signed(o.Return)}},
	}
	for _, b := range o.Benchmarks {
		returns.Rows = append(returns.Rows, []string{b.Asset, signed(b.Return)})
	}
	doc.Table(returns)

	if o.Best != nil {
		doc.PlainText(fmt.Sprintf("Best asset: %s (%s), worst asset: %s (%s).",
			md.Bold(o.Best.Asset), signed(o.Best.Return), md.Bold(o.Worst.Asset), signed(o.Worst.Return)))
	}

	if len(o.Weights) > 0 {
		doc.H2("Current Weights")
		weights := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Asset", "Weight"},
		}
		for _, w := range o.Weights {
			weights.Rows = append(weights.Rows, []string{w.Asset, fmt.Sprintf("%.1f%%", 100*w.Weight)})
		}
		doc.Table(weights)
	}

	doc.H2(fmt.Sprintf("Value at Risk (%.0f%%)", 100*o.Confidence))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Horizon", "Loss", "Risk"},
		Rows: [][]string{
			{"1 day", pct(o.VaR.Day), RiskLevel(o.VaR.Day)},
			{"1 month", pct(o.VaR.Month), RiskLevel(o.VaR.Month)},
			{"1 year", pct(o.VaR.Year), RiskLevel(o.VaR.Year)},
		},
	})

	return doc.String()
}
