package analytics

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/etnz/analytics/date"
)

// DefaultVaRAlpha is the tail probability of a 95% confidence Value at Risk.
const DefaultVaRAlpha = 0.05

// LastValue returns the latest value of the series.
func LastValue(s *Series) (float64, error) {
	if s.Len() == 0 {
		return math.NaN(), fmt.Errorf("last value of %q: %w", s.Name(), ErrEmptyInput)
	}
	_, v := s.Latest()
	return v, nil
}

// TotalReturn returns last/first - 1 over the defined points.
//
// A single point series has a zero return. A zero first value, or no defined
// point at all, yields Undefined.
func TotalReturn(s *Series) (float64, error) {
	if s.Len() == 0 {
		return math.NaN(), fmt.Errorf("total return of %q: %w", s.Name(), ErrEmptyInput)
	}
	d := dropMissing(s)
	switch d.Len() {
	case 0:
		return math.NaN(), nil
	case 1:
		return 0, nil
	}
	_, first := d.First()
	_, last := d.Latest()
	return ratio(last, first) - 1, nil
}

// ratio returns a/b, or NaN when b is zero.
func ratio(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	return a / b
}

// DailyReturns iterates over the percentage change between consecutive points.
//
// Missing (NaN) points are skipped, so a series without them yields Len()-1
// items, each dated on the later point of the pair.
// It can be iterated several times.
func DailyReturns(s *Series) iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		prev := math.NaN()
		for on, v := range s.Points() {
			if math.IsNaN(v) {
				continue
			}
			if !math.IsNaN(prev) && !yield(on, ratio(v, prev)-1) {
				return
			}
			prev = v
		}
	}
}

// Returns collects DailyReturns into a slice.
func Returns(s *Series) []float64 {
	returns := make([]float64, 0, max(s.Len()-1, 0))
	for _, r := range DailyReturns(s) {
		returns = append(returns, r)
	}
	return returns
}

// ReturnSeries collects DailyReturns into a series.
func ReturnSeries(s *Series) *Series {
	r := EmptySeries(s.Name())
	for on, v := range DailyReturns(s) {
		r.h.Append(on, v)
	}
	return r
}

// CumulativeReturns iterates over the compounded return since the first point.
//
// It is aligned with DailyReturns: its first item is dated on the second point.
func CumulativeReturns(s *Series) iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		growth := 1.0
		for on, r := range DailyReturns(s) {
			growth *= 1 + r
			if !yield(on, growth-1) {
				return
			}
		}
	}
}

// HistoricalVaR returns the alpha quantile of the returns, as a loss (negative or zero).
//
// Missing (NaN) returns are dropped. The quantile is linearly interpolated
// between closest ranks. It is Undefined when no return is left.
func HistoricalVaR(returns []float64, alpha float64) float64 {
	q := Quantile(returns, alpha)
	if math.IsNaN(q) {
		return q
	}
	return math.Min(q, 0)
}

// Quantile returns the p quantile (0 <= p <= 1) of the non NaN values, using
// linear interpolation between closest ranks.
func Quantile(values []float64, p float64) float64 {
	x := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			x = append(x, v)
		}
	}
	if len(x) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	slices.Sort(x)
	h := p * float64(len(x)-1)
	lo := int(math.Floor(h))
	if lo >= len(x)-1 {
		return x[len(x)-1]
	}
	return x[lo] + (h-float64(lo))*(x[lo+1]-x[lo])
}

// Horizons holds a Value at Risk scaled to several holding periods, expressed
// as positive loss fractions.
type Horizons struct {
	Day, Month, Year float64
}

// VaRHorizons scales the daily historical VaR with the square root of time
// to one month (21 trading days) and one year (252 trading days).
func VaRHorizons(returns []float64, alpha float64) Horizons {
	d := math.Abs(HistoricalVaR(returns, alpha))
	return Horizons{
		Day:   d,
		Month: d * math.Sqrt(21),
		Year:  d * math.Sqrt(252),
	}
}

// CompoundReturn returns the product of (1+r) minus one. Missing returns are skipped.
func CompoundReturn(returns []float64) float64 {
	growth := 1.0
	for _, r := range returns {
		if math.IsNaN(r) {
			continue
		}
		growth *= 1 + r
	}
	return growth - 1
}
