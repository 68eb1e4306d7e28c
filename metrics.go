package analytics

import (
	"fmt"
	"math"

	"github.com/etnz/analytics/date"
	"gonum.org/v1/gonum/stat"
)

// Params holds the annualisation settings shared by the risk metrics.
type Params struct {
	RiskFreeRate   float64 // annual risk free rate, e.g. 0.02
	PeriodsPerYear float64 // number of return observations per year, e.g. 252 for daily data
}

// DefaultParams returns a zero risk free rate over 252 trading days.
func DefaultParams() Params { return Params{RiskFreeRate: 0, PeriodsPerYear: 252} }

// AnnualizedReturn returns (last/first)^(periodsPerYear/n) - 1 where n is the
// number of daily returns. Missing points are skipped.
func AnnualizedReturn(s *Series, p Params) (float64, error) {
	if s.Len() == 0 {
		return math.NaN(), fmt.Errorf("annualized return of %q: %w", s.Name(), ErrEmptyInput)
	}
	d := dropMissing(s)
	n := d.Len() - 1
	if n <= 0 {
		return math.NaN(), nil
	}
	_, first := d.First()
	_, last := d.Latest()
	return math.Pow(ratio(last, first), p.PeriodsPerYear/float64(n)) - 1, nil
}

// excessReturns returns the daily returns minus the per period risk free rate.
func excessReturns(s *Series, p Params) []float64 {
	rf := p.RiskFreeRate / p.PeriodsPerYear
	excess := Returns(s)
	for i := range excess {
		excess[i] -= rf
	}
	return excess
}

// SharpeRatio returns the annualised mean excess return over its sample standard deviation.
//
// It is Undefined with fewer than two returns or a zero deviation.
func SharpeRatio(s *Series, p Params) float64 {
	returns := Returns(s)
	if len(returns) < 2 {
		return math.NaN()
	}
	// Shifting by the risk free rate leaves the deviation unchanged, computing it
	// on raw returns keeps a constant series at exactly zero.
	sd := stat.StdDev(returns, nil)
	if sd == 0 || math.IsNaN(sd) {
		return math.NaN()
	}
	excess := stat.Mean(returns, nil) - p.RiskFreeRate/p.PeriodsPerYear
	return math.Sqrt(p.PeriodsPerYear) * excess / sd
}

// SortinoRatio is like SharpeRatio but divides by the downside deviation, the
// root mean square of the negative excess returns only.
//
// It is Undefined when no excess return is negative.
func SortinoRatio(s *Series, p Params) float64 {
	excess := excessReturns(s, p)
	var downside []float64
	for _, r := range excess {
		if r < 0 {
			downside = append(downside, r*r)
		}
	}
	if len(downside) == 0 {
		return math.NaN()
	}
	dd := math.Sqrt(stat.Mean(downside, nil))
	if dd == 0 {
		return math.NaN()
	}
	return math.Sqrt(p.PeriodsPerYear) * stat.Mean(excess, nil) / dd
}

// MaxDrawdown returns the most negative value/runningMax - 1 over the series.
// It is 0 for a non decreasing series. Missing points are skipped.
func MaxDrawdown(s *Series) (float64, error) {
	if s.Len() == 0 {
		return math.NaN(), fmt.Errorf("max drawdown of %q: %w", s.Name(), ErrEmptyInput)
	}
	peak := math.Inf(-1)
	worst := 0.0
	for _, v := range s.Points() {
		if math.IsNaN(v) {
			continue
		}
		peak = math.Max(peak, v)
		dd := ratio(v, peak) - 1
		if math.IsNaN(dd) {
			return math.NaN(), nil
		}
		worst = math.Min(worst, dd)
	}
	return worst, nil
}

// AlphaBeta regresses the portfolio daily returns on the benchmark ones.
//
// When the two return series differ in length, both are trimmed to their most
// recent common count. Dates are not compared: callers must provide series
// ending on the same date with the same sampling, otherwise returns are
// silently misaligned.
//
// Alpha is the intercept annualised by multiplying with PeriodsPerYear. Both
// values are Undefined with fewer than two common returns or a constant benchmark.
func AlphaBeta(portfolio, benchmark *Series, p Params) (alpha, beta float64) {
	rp, rb := Returns(portfolio), Returns(benchmark)
	n := min(len(rp), len(rb))
	if n < 2 {
		return math.NaN(), math.NaN()
	}
	rp, rb = rp[len(rp)-n:], rb[len(rb)-n:]

	vb := stat.Variance(rb, nil)
	if vb == 0 || math.IsNaN(vb) {
		return math.NaN(), math.NaN()
	}
	beta = stat.Covariance(rp, rb, nil) / vb
	alpha = (stat.Mean(rp, nil) - beta*stat.Mean(rb, nil)) * p.PeriodsPerYear
	return alpha, beta
}

// Turnover returns the mean, over consecutive rows dated on or before cutoff,
// of the sum of absolute weight changes across all columns (CASH included).
// A change involving a missing weight is skipped.
//
// It is Undefined with fewer than two rows.
func Turnover(alloc *Table, cutoff date.Date) float64 {
	t := alloc.Until(cutoff)
	if t.Len() < 2 {
		return math.NaN()
	}
	churns := make([]float64, 0, t.Len()-1)
	for i := 1; i < t.Len(); i++ {
		var churn float64
		for j := range t.rows[i] {
			if delta := math.Abs(t.rows[i][j] - t.rows[i-1][j]); !math.IsNaN(delta) {
				churn += delta
			}
		}
		churns = append(churns, churn)
	}
	return stat.Mean(churns, nil)
}

// EffectiveN returns the inverse Herfindahl index 1/sum(w^2) of the weights.
//
// It is Undefined for an empty or all zero weight vector.
func EffectiveN(weights []float64) float64 {
	var sum float64
	for _, w := range weights {
		sum += w * w
	}
	if sum == 0 {
		return math.NaN()
	}
	return 1 / sum
}
