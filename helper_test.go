package analytics

import (
	"math"
	"testing"

	"github.com/etnz/analytics/date"
)

// d parses a date for tests.
func d(s string) date.Date { return date.MustParse(s) }

// days returns n consecutive days starting on from.
func days(from string, n int) []date.Date {
	start := d(from)
	res := make([]date.Date, n)
	for i := range res {
		res[i] = start.Add(i)
	}
	return res
}

// series creates a daily series starting on 2024-01-01.
func series(values ...float64) *Series {
	return MustSeries("test", days("2024-01-01", len(values)), values)
}

// table creates a daily table starting on 2024-01-01, rows in column order.
func table(t *testing.T, columns []string, rows ...[]float64) *Table {
	t.Helper()
	tbl := MustTable(columns...)
	for i, on := range days("2024-01-01", len(rows)) {
		if err := tbl.AppendValues(on, rows[i]...); err != nil {
			t.Fatalf("AppendValues(%v) unexpected error: %v", on, err)
		}
	}
	return tbl
}

// near compares floats with some precision, NaN being equal to NaN.
func near(got, want float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	const precision = 1e-6
	return math.Abs(got-want) < precision
}

var nan = math.NaN()
