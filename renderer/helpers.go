// Package renderer formats analytics results as markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/etnz/analytics"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// pct formats a fraction (0.05) as a percent (5.00%).
func pct(fraction float64) string { return analytics.Pct(fraction).String() }

// signed formats a fraction as a signed percent.
func signed(fraction float64) string { return analytics.Pct(fraction).SignedString() }

// points formats a change already expressed in percent.
func points(p float64) string { return analytics.Percent(p).SignedString() }

// ratio formats a plain metric.
func ratio(x float64) string { return analytics.Ratio(x).String() }

// number formats a raw indicator value, large values without decimals.
func number(x float64) string {
	switch {
	case !analytics.Defined(x):
		return "N/A"
	case math.Abs(x) > 1e6:
		return fmt.Sprintf("%.0f", x)
	default:
		return fmt.Sprintf("%.2f", x)
	}
}
