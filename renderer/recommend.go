package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
)

// adviceText describes the advice for a weight change.
func adviceText(c analytics.WeightChange) string {
	switch c.Advice() {
	case analytics.Increase:
		return fmt.Sprintf("buy %.1f%%", c.Delta())
	case analytics.Decrease:
		return fmt.Sprintf("sell %.1f%%", -c.Delta())
	default:
		return "hold"
	}
}

// RecommendationMarkdown renders the comparison between the current and the
// next planned allocation.
func RecommendationMarkdown(r *analytics.Recommendation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Next Move")
	if r.RecommendedDay == r.ActualDay {
		doc.PlainText(fmt.Sprintf("No planned allocation after %s.", r.ActualDay))
	} else {
		doc.PlainText(fmt.Sprintf("Allocation of %s against the one planned on %s.", r.ActualDay, r.RecommendedDay))
	}

	top := r.TopRecommended()
	held := r.TopActual()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"", "Asset", "Weight", "Advice"},
		Rows: [][]string{
			{"Most recommended", top.Asset, fmt.Sprintf("%.1f%%", 100*top.Recommended), adviceText(top)},
			{"Most weighted", held.Asset, fmt.Sprintf("%.1f%%", 100*held.Actual), adviceText(held)},
		},
	})

	doc.H2("Weight Changes")
	changes := r.Changes()
	if len(changes) == 0 {
		doc.PlainText("No weight change recommended.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Asset", "Actual", "Recommended", "Advice"},
	}
	for _, c := range changes {
		table.Rows = append(table.Rows, []string{
			c.Asset,
			fmt.Sprintf("%.1f%%", 100*c.Actual),
			fmt.Sprintf("%.1f%%", 100*c.Recommended),
			adviceText(c),
		})
	}
	doc.Table(table)
	return doc.String()
}
