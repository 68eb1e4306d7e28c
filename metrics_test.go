package analytics

import (
	"errors"
	"math"
	"testing"
)

func TestAnnualizedReturn(t *testing.T) {
	p := Params{PeriodsPerYear: 2}
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "one year", values: []float64{100, 110, 121}, want: 0.21},
		{name: "half a year", values: []float64{100, 110}, want: 0.21},
		{name: "single point", values: []float64{100}, want: nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnnualizedReturn(series(tt.values...), p)
			if err != nil {
				t.Fatalf("AnnualizedReturn() unexpected error: %v", err)
			}
			if !near(got, tt.want) {
				t.Errorf("AnnualizedReturn() = %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := AnnualizedReturn(EmptySeries("empty"), p); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("AnnualizedReturn(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      Params
		want   float64
	}{
		{name: "constant", values: []float64{100, 100, 100, 100}, p: DefaultParams(), want: nan},
		{name: "constant with risk free", values: []float64{100, 100, 100, 100}, p: Params{RiskFreeRate: 0.02, PeriodsPerYear: 252}, want: nan},
		{name: "two returns", values: []float64{100, 101, 104.03}, p: DefaultParams(), want: math.Sqrt(504)},
		{name: "single return", values: []float64{100, 101}, p: DefaultParams(), want: nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SharpeRatio(series(tt.values...), tt.p); !near(got, tt.want) {
				t.Errorf("SharpeRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortinoRatio(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "one loss", values: []float64{100, 90, 108}, want: math.Sqrt(252) * 0.5},
		{name: "no loss", values: []float64{100, 110, 120}, want: nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortinoRatio(series(tt.values...), DefaultParams()); !near(got, tt.want) {
				t.Errorf("SortinoRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "increasing", values: []float64{100, 110, 120, 130}, want: 0},
		{name: "drop and recover", values: []float64{100, 120, 90, 130}, want: -0.25},
		{name: "two drops", values: []float64{100, 80, 120, 60}, want: -0.5},
		{name: "single point", values: []float64{100}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxDrawdown(series(tt.values...))
			if err != nil {
				t.Fatalf("MaxDrawdown() unexpected error: %v", err)
			}
			if !near(got, tt.want) {
				t.Errorf("MaxDrawdown() = %v, want %v", got, tt.want)
			}
			if got > 0 {
				t.Errorf("MaxDrawdown() = %v, want <= 0", got)
			}
		})
	}
	if _, err := MaxDrawdown(EmptySeries("empty")); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("MaxDrawdown(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestAlphaBeta(t *testing.T) {
	bench := series(100, 110, 99, 108.9)
	tests := []struct {
		name      string
		portfolio *Series
		benchmark *Series
		wantAlpha float64
		wantBeta  float64
	}{
		{name: "leveraged", portfolio: series(100, 120, 96, 115.2), benchmark: bench, wantAlpha: 0, wantBeta: 2},
		{name: "itself", portfolio: bench, benchmark: bench, wantAlpha: 0, wantBeta: 1},
		{name: "longer portfolio trimmed", portfolio: series(50, 100, 120, 96, 115.2), benchmark: bench, wantAlpha: 0, wantBeta: 2},
		{name: "constant benchmark", portfolio: bench, benchmark: series(100, 100, 100, 100), wantAlpha: nan, wantBeta: nan},
		{name: "not enough returns", portfolio: series(100, 110), benchmark: bench, wantAlpha: nan, wantBeta: nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha, beta := AlphaBeta(tt.portfolio, tt.benchmark, DefaultParams())
			if !near(alpha, tt.wantAlpha) || !near(beta, tt.wantBeta) {
				t.Errorf("AlphaBeta() = %v, %v, want %v, %v", alpha, beta, tt.wantAlpha, tt.wantBeta)
			}
		})
	}
}

func TestTurnover(t *testing.T) {
	alloc := table(t, []string{"A", "B"},
		[]float64{0.5, 0.5},
		[]float64{0.6, 0.4},
		[]float64{0.5, 0.5},
	)
	if got := Turnover(alloc, d("2024-12-31")); !near(got, 0.2) {
		t.Errorf("Turnover() = %v, want 0.2", got)
	}
	if got := Turnover(alloc, d("2024-01-01")); !near(got, nan) {
		t.Errorf("Turnover(single row) = %v, want NaN", got)
	}

	withCash := table(t, []string{"A", Cash},
		[]float64{1, 0},
		[]float64{0.5, 0.5},
	)
	if got := Turnover(withCash, d("2024-12-31")); !near(got, 1) {
		t.Errorf("Turnover(with cash) = %v, want 1", got)
	}

	// B is missing on the second row: only the changes of A count.
	missing := table(t, []string{"A", "B"},
		[]float64{0.5, 0.5},
		[]float64{0.6, nan},
		[]float64{0.4, 0.6},
	)
	if got := Turnover(missing, d("2024-12-31")); !near(got, 0.15) {
		t.Errorf("Turnover(missing weight) = %v, want 0.15", got)
	}
}

func TestEffectiveN(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    float64
	}{
		{name: "equal weights", weights: []float64{0.25, 0.25, 0.25, 0.25}, want: 4},
		{name: "concentrated", weights: []float64{1, 0, 0, 0}, want: 1},
		{name: "two assets", weights: []float64{0.5, 0.5}, want: 2},
		{name: "all zero", weights: []float64{0, 0}, want: nan},
		{name: "empty", weights: nil, want: nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveN(tt.weights); !near(got, tt.want) {
				t.Errorf("EffectiveN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingPoints(t *testing.T) {
	s := series(100, nan, 110, 105, 120)

	returns := Returns(s)
	want := []float64{0.1, 105.0/110 - 1, 120.0/105 - 1}
	if len(returns) != len(want) {
		t.Fatalf("Returns() = %v, want %v", returns, want)
	}
	for i := range want {
		if !near(returns[i], want[i]) {
			t.Errorf("Returns()[%d] = %v, want %v", i, returns[i], want[i])
		}
	}
	for on := range DailyReturns(s) {
		if on != d("2024-01-03") {
			t.Errorf("first return dated %v, want 2024-01-03", on)
		}
		break
	}

	if got, err := TotalReturn(s); err != nil || !near(got, 0.2) {
		t.Errorf("TotalReturn() = %v, %v, want 0.2", got, err)
	}
	if got, err := MaxDrawdown(s); err != nil || !near(got, 105.0/110-1) {
		t.Errorf("MaxDrawdown() = %v, %v, want %v", got, err, 105.0/110-1)
	}
	p := DefaultParams()
	if got := SharpeRatio(s, p); !Defined(got) {
		t.Errorf("SharpeRatio() = %v, want a defined ratio", got)
	}
	if got := SortinoRatio(s, p); !Defined(got) {
		t.Errorf("SortinoRatio() = %v, want a defined ratio", got)
	}
	// three returns between the first and the last defined points
	wantAnn := math.Pow(1.2, 252.0/3) - 1
	if got, err := AnnualizedReturn(s, p); err != nil || math.Abs(got-wantAnn)/wantAnn > 1e-9 {
		t.Errorf("AnnualizedReturn() = %v, %v, want %v", got, err, wantAnn)
	}

	all := series(nan, nan)
	if got, err := TotalReturn(all); err != nil || !near(got, nan) {
		t.Errorf("TotalReturn(all missing) = %v, %v, want NaN", got, err)
	}
	if got, err := MaxDrawdown(all); err != nil || got != 0 {
		t.Errorf("MaxDrawdown(all missing) = %v, %v, want 0", got, err)
	}
}

