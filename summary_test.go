package analytics

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	values := series(100, 110, 99, 108.9, 120)
	alloc := table(t, []string{"A", "B", Cash},
		[]float64{0.5, 0.5, 0},
		[]float64{0.25, 0.25, 0.5},
		[]float64{0.25, 0.25, 0.5},
		[]float64{0.5, 0.5, 0},
	)
	asOf := d("2024-01-03")

	t.Run("portfolio", func(t *testing.T) {
		s, err := Summarize(SummaryInput{
			Values:      values,
			Allocations: alloc,
			Reference:   values,
			AsOf:        asOf,
			Params:      DefaultParams(),
			Portfolio:   true,
		})
		if err != nil {
			t.Fatalf("Summarize() unexpected error: %v", err)
		}
		// as of 2024-01-03 the allocation is 25/25/50.
		if !near(s.EffectiveN, 1/0.375) {
			t.Errorf("EffectiveN = %v, want %v", s.EffectiveN, 1/0.375)
		}
		if s.Assets != 3 {
			t.Errorf("Assets = %d, want 3", s.Assets)
		}
		if !near(s.Turnover, 0.5) {
			t.Errorf("Turnover = %v, want 0.5", s.Turnover)
		}
		if !near(s.MaxDrawdown, -0.1) {
			t.Errorf("MaxDrawdown = %v, want -0.1", s.MaxDrawdown)
		}
		if !near(s.Beta, 1) || !near(s.Alpha, 0) {
			t.Errorf("Alpha/Beta = %v/%v, want 0/1", s.Alpha, s.Beta)
		}
	})

	t.Run("benchmark", func(t *testing.T) {
		s, err := Summarize(SummaryInput{Values: values, Allocations: alloc, AsOf: asOf, Params: DefaultParams()})
		if err != nil {
			t.Fatalf("Summarize() unexpected error: %v", err)
		}
		if !near(s.Turnover, nan) || !near(s.Alpha, nan) || !near(s.Beta, nan) {
			t.Errorf("Turnover/Alpha/Beta = %v/%v/%v, want undefined", s.Turnover, s.Alpha, s.Beta)
		}
	})

	t.Run("before first value", func(t *testing.T) {
		_, err := Summarize(SummaryInput{Values: values, AsOf: d("2023-01-01"), Params: DefaultParams()})
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Summarize() error = %v, want ErrEmptyInput", err)
		}
	})
}
