package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
)

var nan = math.NaN()

// table creates a daily table starting on 2024-01-01.
func table(t *testing.T, columns []string, rows ...[]float64) *analytics.Table {
	t.Helper()
	tbl := analytics.MustTable(columns...)
	on := date.New(2024, 1, 1)
	for i, row := range rows {
		if err := tbl.AppendValues(on.Add(i), row...); err != nil {
			t.Fatalf("AppendValues() unexpected error: %v", err)
		}
	}
	return tbl
}

// series creates a daily series starting on 2024-01-01.
func series(name string, values ...float64) *analytics.Series {
	days := make([]date.Date, len(values))
	for i := range days {
		days[i] = date.New(2024, 1, 1).Add(i)
	}
	return analytics.MustSeries(name, days, values)
}

// contains fails the test for every missing fragment.
func contains(t *testing.T, got string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(got, f) {
			t.Errorf("missing %q in:\n%s", f, got)
		}
	}
}

func TestRatings(t *testing.T) {
	tests := []struct {
		name string
		rate func(float64) Rating
		x    float64
		want Rating
	}{
		{"sharpe good", RateSharpe, 1.2, Good},
		{"sharpe fair", RateSharpe, 0.7, Fair},
		{"sharpe poor", RateSharpe, 0.5, Poor},
		{"sharpe undefined", RateSharpe, nan, Unrated},
		{"drawdown good", RateDrawdown, -0.05, Good},
		{"drawdown poor", RateDrawdown, -0.35, Poor},
		{"return fair", RateAnnualizedReturn, 0.05, Fair},
		{"alpha good", RateAlpha, 0.01, Good},
		{"alpha poor", RateAlpha, -0.06, Poor},
		{"beta good", RateBeta, 1.0, Good},
		{"beta fair", RateBeta, 1.2, Fair},
		{"beta poor", RateBeta, 0.5, Poor},
		{"effective n good", RateEffectiveN, 6, Good},
		{"turnover good", RateTurnover, 0.8, Good},
		{"turnover fair", RateTurnover, 1.5, Fair},
		{"turnover poor", RateTurnover, 2.5, Poor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rate(tt.x); got != tt.want {
				t.Errorf("rate(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		loss float64
		want string
	}{
		{0.01, "low"},
		{0.03, "low"},
		{0.05, "moderate"},
		{0.10, "excessive"},
		{nan, "N/A"},
	}
	for _, tt := range tests {
		if got := RiskLevel(tt.loss); got != tt.want {
			t.Errorf("RiskLevel(%v) = %q, want %q", tt.loss, got, tt.want)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	p := analytics.Summary{
		Name:             "Portfolio",
		AsOf:             date.New(2024, 3, 1),
		SharpeRatio:      1.5,
		SortinoRatio:     nan,
		MaxDrawdown:      -0.2,
		AnnualizedReturn: 0.1,
		EffectiveN:       3,
		Assets:           4,
		Turnover:         0.5,
		Alpha:            nan,
		Beta:             nan,
	}
	b := p
	b.Name = "SP500"
	got := SummaryMarkdown(p, &b, "SP500")
	contains(t, got, "Performance on 2024-03-01", "Portfolio", "SP500", "1.50", "N/A", "-20.00%", "3.00 / 4", "good", "Alpha and Beta are measured against")
}

func TestOverview(t *testing.T) {
	alloc := table(t, []string{"A", "B"}, []float64{0.4, 0.6}, []float64{0.6, 0.4}, []float64{0.6, 0.4})
	prices := table(t, []string{"A", "B"}, []float64{10, 20}, []float64{11, 20}, []float64{12, 18})
	bench := analytics.Benchmarks{"SP500": {Name: "SP500", Values: series("SP500", 100, 105, 110)}}

	o, err := NewOverview(OverviewInput{
		Portfolio:   series("Portfolio", 100, 110, 121),
		Benchmarks:  bench,
		Allocations: alloc,
		Prices:      prices,
		AsOf:        date.New(2024, 1, 3),
		Window:      analytics.WindowAll,
		Alpha:       analytics.DefaultVaRAlpha,
		Currency:    "USD",
	})
	if err != nil {
		t.Fatalf("NewOverview() unexpected error: %v", err)
	}
	if math.Abs(o.Return-0.21) > 1e-9 {
		t.Errorf("Return = %v, want 0.21", o.Return)
	}
	if len(o.Weights) != 2 || o.Weights[0].Asset != "A" {
		t.Errorf("Weights = %v, want A first", o.Weights)
	}
	if o.Best == nil || o.Best.Asset != "A" || o.Worst.Asset != "B" {
		t.Errorf("Best, Worst = %v, %v, want A, B", o.Best, o.Worst)
	}
	got := OverviewMarkdown(o)
	contains(t, got, "$121.00", "+21.00%", "+10.00%", "SP500", "Value at Risk (95%)", "60.0%", "low")
}

func TestOverviewEmpty(t *testing.T) {
	_, err := NewOverview(OverviewInput{
		Portfolio: series("Portfolio"),
		AsOf:      date.New(2024, 1, 3),
	})
	if err == nil {
		t.Error("NewOverview(empty) expected an error")
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := TransactionsMarkdown(nil, "USD")
		contains(t, got, "No transaction detected", "0.00%")
	})
	t.Run("trades", func(t *testing.T) {
		txs := []analytics.Transaction{
			{Day: date.New(2024, 1, 2), Asset: "A", Action: analytics.Buy, WeightChange: 0.1, EntryPrice: 100, ExitPrice: 110, TradeReturn: 0.1},
			{Day: date.New(2024, 1, 2), Asset: "B", Action: analytics.Sell, WeightChange: -0.1, EntryPrice: nan, ExitPrice: 50, TradeReturn: nan},
		}
		got := TransactionsMarkdown(txs, "USD")
		contains(t, got, "Buy", "Sell", "$100.00", "$110.00", "+10.00%", "-10.00%", "N/A", "20.00%")
	})
}

func TestCashMarkdown(t *testing.T) {
	t.Run("no cash", func(t *testing.T) {
		got := CashMarkdown(analytics.EmptySeries(analytics.Cash))
		contains(t, got, "There is no CASH column")
	})
	t.Run("cash", func(t *testing.T) {
		got := CashMarkdown(series(analytics.Cash, 0.1, 0.05))
		contains(t, got, "Cash weight on 2024-01-02", "5.00%", "-5.00%")
	})
}

func TestRecommendationMarkdown(t *testing.T) {
	alloc := table(t, []string{"A", "B"}, []float64{0.5, 0.5}, []float64{0.7, 0.3})
	r, err := analytics.Recommend(alloc, date.New(2024, 1, 1))
	if err != nil {
		t.Fatalf("Recommend() unexpected error: %v", err)
	}
	got := RecommendationMarkdown(r)
	contains(t, got, "Next Move", "2024-01-02", "70.0%", "buy 20.0%", "sell 20.0%")
}

func TestRecommendationMarkdownNoPlan(t *testing.T) {
	alloc := table(t, []string{"A", "B"}, []float64{0.5, 0.5})
	r, err := analytics.Recommend(alloc, date.New(2024, 1, 5))
	if err != nil {
		t.Fatalf("Recommend() unexpected error: %v", err)
	}
	got := RecommendationMarkdown(r)
	contains(t, got, "No planned allocation", "No weight change recommended", "hold")
}

func TestAssetView(t *testing.T) {
	fund := table(t, []string{"pe_ratio"}, []float64{10}, []float64{12})
	tech := table(t, []string{CloseColumn, "rsi"}, []float64{10, 50}, []float64{12, 60}, []float64{9, 40}, []float64{11, 45})
	alloc := table(t, []string{"AAA", "BBB"}, []float64{0.5, 0.5}, []float64{0.25, 0.75})

	v := NewAssetView(AssetInput{
		Asset:        "AAA",
		Fundamentals: fund,
		Technicals:   tech,
		Allocations:  alloc,
		Range:        date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 4)),
	})
	if math.Abs(v.Return-0.1) > 1e-9 {
		t.Errorf("Return = %v, want 0.1", v.Return)
	}
	if math.Abs(v.Drawdown-(-0.25)) > 1e-9 {
		t.Errorf("Drawdown = %v, want -0.25", v.Drawdown)
	}
	got := AssetMarkdown(v)
	contains(t, got, "Asset Summary for AAA", "PE RATIO", "+20.00%", "CLOSE", "Current weight on 2024-01-02", "25.00%", "+10.00%", "-25.00%")
}

func TestAssetViewMissing(t *testing.T) {
	tech := table(t, []string{CloseColumn}, []float64{10})
	v := NewAssetView(AssetInput{
		Asset:      "ZZZ",
		Technicals: tech,
		Range:      date.NewRange(date.New(2024, 1, 1), date.New(2024, 12, 31)),
	})
	if analytics.Defined(v.Return) {
		t.Errorf("Return = %v, want undefined", v.Return)
	}
	got := AssetMarkdown(v)
	contains(t, got, "There is no weight for ZZZ", "N/A")
	if strings.Contains(got, "Fundamentals") {
		t.Errorf("AssetMarkdown() rendered an empty Fundamentals section:\n%s", got)
	}
}

func TestMarketMarkdown(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		contains(t, MarketMarkdown(nil), "No market indicator available")
	})
	t.Run("trends", func(t *testing.T) {
		inds := []analytics.Indicator{
			{Name: "TASADES", Day: date.New(2024, 6, 1), Last: 12, Previous: 11, YoY: 5},
			{Name: "GDP", Day: date.New(2024, 6, 1), Last: 105, Previous: 104, YoY: 5},
			{Name: "OIL", Day: date.New(2024, 6, 1), Last: 80, Previous: 82, YoY: -10},
			{Name: "CPI", Day: date.New(2024, 6, 1), Last: 3, Previous: 3, YoY: nan},
		}
		got := MarketMarkdown(inds)
		contains(t, got, "Market Situation", "TASADES", "▼ worsening", "▲ improving", "▼", "→", "N/A", "+5.00%")
	})
}

func TestPolarityOf(t *testing.T) {
	tests := []struct {
		name string
		want analytics.Polarity
	}{
		{"VIXCLS", analytics.LowerIsBetter},
		{"M2", analytics.Neutral},
		{"NASDAQ100", analytics.HigherIsBetter},
		{"UNKNOWN", analytics.HigherIsBetter},
	}
	for _, tt := range tests {
		if got := PolarityOf(tt.name); got != tt.want {
			t.Errorf("PolarityOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
