package analytics

import (
	"fmt"
	"math"

	"github.com/etnz/analytics/date"
)

// Polarity tells whether an increase of an indicator is good news.
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
	Neutral
)

// Trend qualifies a year over year change with respect to a polarity.
type Trend int

const (
	Stable Trend = iota
	Improving
	Worsening
	Rising  // neutral indicator going up
	Falling // neutral indicator going down
)

func (t Trend) String() string {
	switch t {
	case Stable:
		return "stable"
	case Improving:
		return "improving"
	case Worsening:
		return "worsening"
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		panic(fmt.Sprintf("unknown trend %d", t))
	}
}

// TrendBand is the year over year change, in percent, below which an indicator is stable.
const TrendBand = 1.0

// TrendOf classifies a year over year change in percent. An undefined change is Stable.
func TrendOf(yoy float64, p Polarity) Trend {
	var up, down bool
	if Defined(yoy) {
		up, down = yoy > TrendBand, yoy < -TrendBand
	}
	switch {
	case !up && !down:
		return Stable
	case p == Neutral && up:
		return Rising
	case p == Neutral:
		return Falling
	case up == (p == HigherIsBetter):
		return Improving
	default:
		return Worsening
	}
}

// Indicator is the latest reading of a macroeconomic or market series.
type Indicator struct {
	Name     string
	Day      date.Date
	Last     float64
	Previous float64
	YoY      float64 // change in percent against the reading one year earlier, NaN if unknown
}

// LatestIndicator returns the last and previous readings of s and the year over
// year change against the last reading at least 365 days older. Missing values
// are ignored. At least two readings are required.
func LatestIndicator(s *Series) (Indicator, error) {
	s = dropMissing(s)
	if s.Len() < 2 {
		return Indicator{}, fmt.Errorf("indicator %q: %d readings: %w", s.Name(), s.Len(), ErrEmptyInput)
	}
	day, last := s.Latest()
	ind := Indicator{
		Name:     s.Name(),
		Day:      day,
		Last:     last,
		Previous: s.Value(s.Len() - 2),
		YoY:      math.NaN(),
	}
	if prior, ok := s.ValueAsOf(day.Add(-365)); ok {
		ind.YoY = relativeChange(last, prior)
	}
	return ind, nil
}

// relativeChange returns (v-ref)/|ref| in percent, NaN when ref is zero.
func relativeChange(v, ref float64) float64 {
	if ref == 0 {
		return math.NaN()
	}
	return (v - ref) / math.Abs(ref) * 100
}

// ColumnChange is the latest value of a column and its change against the previous row.
type ColumnChange struct {
	Column string
	Value  float64
	Change float64 // in percent, NaN when undefined
}

// RowChanges returns, in column order, the latest value of each column of t
// and its percent change against the previous row.
func RowChanges(t *Table) ([]ColumnChange, error) {
	n := t.Len()
	if n == 0 {
		return nil, fmt.Errorf("row changes: %w", ErrEmptyInput)
	}
	changes := make([]ColumnChange, 0, len(t.columns))
	for j, c := range t.columns {
		cc := ColumnChange{Column: c, Value: t.rows[n-1][j], Change: math.NaN()}
		if n > 1 {
			cc.Change = relativeChange(cc.Value, t.rows[n-2][j])
		}
		changes = append(changes, cc)
	}
	return changes, nil
}
