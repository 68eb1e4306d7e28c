package analytics

import (
	"fmt"
	"math"

	"github.com/etnz/analytics/date"
)

// AdviceThreshold is the smallest weight difference, in percentage points, worth an advice.
const AdviceThreshold = 0.1

// Advice tells how a recommended weight compares to the actual one.
type Advice int

const (
	Hold Advice = iota
	Increase
	Decrease
)

func (a Advice) String() string {
	switch a {
	case Hold:
		return "hold"
	case Increase:
		return "buy"
	case Decrease:
		return "sell"
	default:
		panic(fmt.Sprintf("unknown advice %d", a))
	}
}

// Recommendation compares the allocation in force on a reporting date with
// the next planned one.
type Recommendation struct {
	ActualDay      date.Date
	RecommendedDay date.Date // equals ActualDay when there is no planned allocation
	Actual         Row
	Recommended    Row
	Columns        []string // allocation column order
}

// Recommend returns the last allocation on or before asOf and the first one
// strictly after it. When no later allocation exists the actual one is reused.
func Recommend(alloc *Table, asOf date.Date) (*Recommendation, error) {
	i, ok := alloc.IndexAsOf(asOf)
	if !ok {
		return nil, fmt.Errorf("allocation as of %v: %w", asOf, ErrEmptyInput)
	}
	r := &Recommendation{
		ActualDay:      alloc.Day(i),
		RecommendedDay: alloc.Day(i),
		Actual:         alloc.Row(i),
		Recommended:    alloc.Row(i),
		Columns:        alloc.Columns(),
	}
	if j, ok := alloc.IndexFrom(asOf.Add(1)); ok {
		r.RecommendedDay = alloc.Day(j)
		r.Recommended = alloc.Row(j)
	}
	return r, nil
}

// WeightChange is the difference between the recommended and the actual weight of an asset.
type WeightChange struct {
	Asset       string
	Actual      float64
	Recommended float64
}

// Delta returns the recommended minus the actual weight, in percentage points.
func (c WeightChange) Delta() float64 { return 100 * (c.Recommended - c.Actual) }

// Advice classifies the delta with AdviceThreshold.
func (c WeightChange) Advice() Advice {
	switch d := c.Delta(); {
	case d > AdviceThreshold:
		return Increase
	case d < -AdviceThreshold:
		return Decrease
	default:
		return Hold
	}
}

// change returns the WeightChange of asset, missing weights count as zero.
func (r *Recommendation) change(asset string) WeightChange {
	zero := func(v float64, ok bool) float64 {
		if !ok || math.IsNaN(v) {
			return 0
		}
		return v
	}
	a, aok := r.Actual[asset]
	b, bok := r.Recommended[asset]
	return WeightChange{Asset: asset, Actual: zero(a, aok), Recommended: zero(b, bok)}
}

// TopRecommended returns the asset with the highest recommended weight.
func (r *Recommendation) TopRecommended() WeightChange { return r.change(argmax(r.Recommended)) }

// TopActual returns the asset with the highest actual weight.
func (r *Recommendation) TopActual() WeightChange { return r.change(argmax(r.Actual)) }

// Changes returns the assets whose weight differs between the two allocations,
// in column order. A weight becoming missing, or no longer missing, is a change.
func (r *Recommendation) Changes() []WeightChange {
	columns := r.Columns
	if columns == nil {
		columns = r.Actual.SortedColumns()
	}
	var changes []WeightChange
	for _, asset := range columns {
		a, b := r.Actual[asset], r.Recommended[asset]
		if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
			continue
		}
		changes = append(changes, r.change(asset))
	}
	return changes
}

// argmax returns the column with the highest value, ties broken alphabetically.
func argmax(row Row) string {
	keys := row.SortedColumns()
	best := ""
	for _, k := range keys {
		if math.IsNaN(row[k]) {
			continue
		}
		if best == "" || row[k] > row[best] {
			best = k
		}
	}
	return best
}
