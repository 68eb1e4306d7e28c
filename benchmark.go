package analytics

import (
	"maps"
	"slices"
	"strings"

	"github.com/etnz/analytics/date"
)

// Benchmark is a named reference series, optionally with precomputed daily returns.
type Benchmark struct {
	Name    string
	Values  *Series
	Returns *Series // optional, nil when not provided
}

// Benchmarks indexes benchmarks by name.
type Benchmarks map[string]*Benchmark

// Names returns the benchmark names sorted alphabetically.
func (bs Benchmarks) Names() []string {
	return slices.Sorted(maps.Keys(bs))
}

// Find returns the benchmark matching name case-insensitively, or the first one
// in name order when none matches. It returns nil for an empty set.
func (bs Benchmarks) Find(name string) *Benchmark {
	names := bs.Names()
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return bs[n]
		}
	}
	if len(names) == 0 {
		return nil
	}
	return bs[names[0]]
}

// TotalReturn compounds the precomputed returns when present, otherwise it is
// the value based total return.
func (b *Benchmark) TotalReturn() (float64, error) {
	if b.Returns != nil && b.Returns.Len() > 0 {
		return CompoundReturn(b.Returns.Floats()), nil
	}
	return TotalReturn(b.Values)
}

// Window returns a copy of the benchmark restricted by w as of 'asOf'.
func (b *Benchmark) Window(w Window, asOf date.Date) *Benchmark {
	c := &Benchmark{Name: b.Name, Values: w.Apply(b.Values, asOf)}
	if b.Returns != nil {
		c.Returns = w.Apply(b.Returns, asOf)
	}
	return c
}
