package analytics

import (
	"fmt"
	"math"

	"github.com/etnz/analytics/date"
)

// SummaryInput gathers the tables needed to summarize a value series.
type SummaryInput struct {
	Values      *Series   // portfolio or benchmark values
	Allocations *Table    // may be nil
	Reference   *Series   // benchmark for alpha and beta, may be nil
	AsOf        date.Date // reporting date
	Params      Params
	// Portfolio is true when Values is the portfolio itself: turnover is only
	// meaningful for the portfolio allocations.
	Portfolio bool
}

// Summary holds the key risk and return metrics of a series. Undefined metrics are NaN.
type Summary struct {
	Name             string
	AsOf             date.Date
	SharpeRatio      float64
	SortinoRatio     float64
	MaxDrawdown      float64
	AnnualizedReturn float64
	EffectiveN       float64
	Assets           int // number of allocation columns, CASH included
	Turnover         float64
	Alpha, Beta      float64
}

// Summarize computes the Summary of in.Values restricted to dates on or before in.AsOf.
func Summarize(in SummaryInput) (Summary, error) {
	s := in.Values.Until(in.AsOf)
	if s.Len() == 0 {
		return Summary{}, fmt.Errorf("summary of %q as of %v: %w", in.Values.Name(), in.AsOf, ErrEmptyInput)
	}
	sum := Summary{
		Name:         s.Name(),
		AsOf:         in.AsOf,
		SharpeRatio:  SharpeRatio(s, in.Params),
		SortinoRatio: SortinoRatio(s, in.Params),
		EffectiveN:   math.NaN(),
		Turnover:     math.NaN(),
		Alpha:        math.NaN(),
		Beta:         math.NaN(),
	}
	// s is not empty, these cannot fail.
	sum.MaxDrawdown, _ = MaxDrawdown(s)
	sum.AnnualizedReturn, _ = AnnualizedReturn(s, in.Params)

	if in.Allocations != nil {
		if i, ok := in.Allocations.IndexAsOf(in.AsOf); ok {
			sum.EffectiveN = EffectiveN(in.Allocations.Values(i))
		}
		sum.Assets = len(in.Allocations.columns)
		if in.Portfolio {
			sum.Turnover = Turnover(in.Allocations, in.AsOf)
		}
	}
	if in.Reference != nil {
		sum.Alpha, sum.Beta = AlphaBeta(s, in.Reference.Until(in.AsOf), in.Params)
	}
	return sum, nil
}
