package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
)

// Polarities of well known indicators. Unknown indicators are HigherIsBetter.
var Polarities = map[string]analytics.Polarity{
	"GDP":         analytics.HigherIsBetter,
	"GDPC1":       analytics.HigherIsBetter,
	"PIB":         analytics.HigherIsBetter,
	"REALPIB":     analytics.HigherIsBetter,
	"TASADES":     analytics.LowerIsBetter,
	"UNRATE":      analytics.LowerIsBetter,
	"CPI":         analytics.LowerIsBetter,
	"M2":          analytics.Neutral,
	"OIL":         analytics.Neutral,
	"DJ":          analytics.HigherIsBetter,
	"NASDAQ100":   analytics.HigherIsBetter,
	"VIXCLS":      analytics.LowerIsBetter,
	"DXY":         analytics.Neutral,
	"INTRATE":     analytics.Neutral,
	"yield_curve": analytics.HigherIsBetter,
}

// PolarityOf returns the polarity of a named indicator.
func PolarityOf(name string) analytics.Polarity {
	if p, ok := Polarities[name]; ok {
		return p
	}
	return analytics.HigherIsBetter
}

// trendMark is a terminal friendly arrow for a trend.
func trendMark(t analytics.Trend) string {
	switch t {
	case analytics.Improving:
		return "▲ improving"
	case analytics.Worsening:
		return "▼ worsening"
	case analytics.Rising:
		return "▲"
	case analytics.Falling:
		return "▼"
	default:
		return "→"
	}
}

// MarketMarkdown renders the latest reading and the year over year trend of
// each indicator.
func MarketMarkdown(indicators []analytics.Indicator) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Situation")
	if len(indicators) == 0 {
		doc.PlainText("No market indicator available.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Indicator", "Date", "Last", "Previous", "YoY", "Trend"},
	}
	for _, ind := range indicators {
		table.Rows = append(table.Rows, []string{
			ind.Name,
			ind.Day.String(),
			number(ind.Last),
			number(ind.Previous),
			points(ind.YoY),
			trendMark(analytics.TrendOf(ind.YoY, PolarityOf(ind.Name))),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("YoY is the change against the last reading at least one year older; changes within ±%.0f%% are stable.", analytics.TrendBand))
	return doc.String()
}
