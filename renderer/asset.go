package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	md "github.com/nao1215/markdown"
)

// CloseColumn is the technicals column holding the asset closing price.
const CloseColumn = "close"

// AssetView is the summary of a single asset.
type AssetView struct {
	Asset        string
	Range        date.Range
	Fundamentals []analytics.ColumnChange
	Technicals   []analytics.ColumnChange
	Weight       *analytics.Series // nil when the asset is not in the allocations
	Return       float64
	Drawdown     float64
}

// AssetInput gathers the tables describing an asset. Any of them may be nil.
type AssetInput struct {
	Asset        string
	Fundamentals *analytics.Table
	Technicals   *analytics.Table
	Allocations  *analytics.Table
	Prices       *analytics.Table
	Range        date.Range
}

// NewAssetView computes the asset summary. Performance is measured on the
// technicals closing price when present, on the price table otherwise.
func NewAssetView(in AssetInput) *AssetView {
	v := &AssetView{
		Asset:    in.Asset,
		Range:    in.Range,
		Return:   analytics.Undefined(),
		Drawdown: analytics.Undefined(),
	}
	if in.Fundamentals != nil {
		v.Fundamentals, _ = analytics.RowChanges(in.Fundamentals)
	}
	if in.Technicals != nil {
		v.Technicals, _ = analytics.RowChanges(in.Technicals)
	}
	if in.Allocations != nil && in.Allocations.Has(in.Asset) {
		v.Weight, _ = in.Allocations.Column(in.Asset)
	}

	var err error
	switch {
	case in.Technicals != nil && in.Technicals.Has(CloseColumn):
		v.Return, v.Drawdown, err = analytics.AssetPerformance(in.Technicals, CloseColumn, in.Range)
	case in.Prices != nil:
		v.Return, v.Drawdown, err = analytics.AssetPerformance(in.Prices, in.Asset, in.Range)
	}
	if err != nil {
		v.Return, v.Drawdown = analytics.Undefined(), analytics.Undefined()
	}
	return v
}

// label turns a column name into a title.
func label(column string) string {
	return strings.ToUpper(strings.ReplaceAll(column, "_", " "))
}

// technical formats technical values: returns and drawdowns as percents.
func technical(column string, x float64) string {
	c := strings.ToLower(column)
	if (strings.Contains(c, "ret") || strings.Contains(c, "drawdown")) && analytics.Defined(x) && x > -5 && x < 5 {
		return pct(x)
	}
	return number(x)
}

func changesTable(changes []analytics.ColumnChange, format func(string, float64) string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Metric", "Value", "Change"},
	}
	for _, c := range changes {
		table.Rows = append(table.Rows, []string{label(c.Column), format(c.Column, c.Value), points(c.Change)})
	}
	return table
}

// changesBlock writes a titled table of column changes, nothing when there are none.
func changesBlock(title string, changes []analytics.ColumnChange, format func(string, float64) string) func(io.Writer) bool {
	return func(w io.Writer) bool {
		if len(changes) == 0 {
			return false
		}
		var buf bytes.Buffer
		doc := md.NewMarkdown(&buf)
		doc.H2(title)
		doc.Table(changesTable(changes, format))
		fmt.Fprintf(w, "%s\n\n", doc.String())
		return true
	}
}

// AssetMarkdown renders the asset summary.
func AssetMarkdown(v *AssetView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Asset Summary for %s\n\n", v.Asset)
	ConditionalBlock(&b, changesBlock("Fundamentals", v.Fundamentals, func(_ string, x float64) string { return number(x) }))
	ConditionalBlock(&b, changesBlock("Technicals", v.Technicals, technical))

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Weight")
	if v.Weight == nil || v.Weight.Len() == 0 {
		doc.PlainText(fmt.Sprintf("There is no weight for %s.", v.Asset))
	} else {
		on, w := v.Weight.Latest()
		doc.PlainText(fmt.Sprintf("Current weight on %s: %s", on, md.Bold(pct(w))))
	}

	doc.H2("Performance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", v.Range.String()},
		Rows: [][]string{
			{"Return", signed(v.Return)},
			{"Max Drawdown", pct(v.Drawdown)},
		},
	})
	b.WriteString(doc.String())
	return b.String()
}
