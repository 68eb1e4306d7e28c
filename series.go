package analytics

import (
	"fmt"
	"iter"
	"math"

	"github.com/etnz/analytics/date"
)

// Series is a named chronological series of values, for instance a portfolio
// or a benchmark market value.
type Series struct {
	name string
	h    *date.History[float64]
}

// NewSeries returns a series with the given points.
// Dates must be strictly increasing.
func NewSeries(name string, days []date.Date, values []float64) (*Series, error) {
	if len(days) != len(values) {
		return nil, fmt.Errorf("series %q: %d dates for %d values: %w", name, len(days), len(values), ErrSchemaMismatch)
	}
	s := EmptySeries(name)
	for i, on := range days {
		if i > 0 && !on.After(days[i-1]) {
			return nil, fmt.Errorf("series %q: %v after %v: %w", name, on, days[i-1], ErrUnsorted)
		}
		s.h.Append(on, values[i])
	}
	return s, nil
}

// MustSeries is like NewSeries but panics on error.
func MustSeries(name string, days []date.Date, values []float64) *Series {
	s, err := NewSeries(name, days, values)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// EmptySeries returns a series with no points.
func EmptySeries(name string) *Series {
	return &Series{name: name, h: new(date.History[float64])}
}

func fromHistory(name string, h *date.History[float64]) *Series {
	return &Series{name: name, h: h}
}

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// Len returns the number of points.
func (s *Series) Len() int { return s.h.Len() }

// Day returns the date of the i-th point.
func (s *Series) Day(i int) date.Date { return s.h.Day(i) }

// Value returns the value of the i-th point.
func (s *Series) Value(i int) float64 { return s.h.Value(i) }

// First returns the first point.
func (s *Series) First() (date.Date, float64) { return s.h.First() }

// Latest returns the last point.
func (s *Series) Latest() (date.Date, float64) { return s.h.Latest() }

// Get returns the value at exactly 'day'.
func (s *Series) Get(day date.Date) (float64, bool) { return s.h.Get(day) }

// ValueAsOf returns the value at 'day' or the most recent one before.
func (s *Series) ValueAsOf(day date.Date) (float64, bool) { return s.h.ValueAsOf(day) }

// Points iterates over all date/value pairs in chronological order.
func (s *Series) Points() iter.Seq2[date.Date, float64] { return s.h.Values() }

// Floats returns a copy of the values.
func (s *Series) Floats() []float64 {
	values := make([]float64, 0, s.Len())
	for _, v := range s.Points() {
		values = append(values, v)
	}
	return values
}

// Until returns the points on or before day.
func (s *Series) Until(day date.Date) *Series { return fromHistory(s.name, s.h.Until(day)) }

// Since returns the points on or after day.
func (s *Series) Since(day date.Date) *Series { return fromHistory(s.name, s.h.Since(day)) }

// Between returns the points within the range.
func (s *Series) Between(r date.Range) *Series {
	return fromHistory(s.name, s.h.Since(r.From).Until(r.To))
}

// Tail returns the last n points.
func (s *Series) Tail(n int) *Series { return fromHistory(s.name, s.h.Tail(n)) }

// dropMissing returns a copy of s without its NaN values.
func dropMissing(s *Series) *Series {
	c := EmptySeries(s.Name())
	for on, v := range s.Points() {
		if !math.IsNaN(v) {
			c.h.Append(on, v)
		}
	}
	return c
}
