package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/analytics/loader"
	"github.com/etnz/analytics/report"
	"google.golang.org/genai"
)

func testReport(t *testing.T) *report.Report {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		loader.PortfolioFile:  "date,portfolio_value\n2024-01-01,100\n2024-01-02,110\n2024-01-03,121\n",
		loader.AllocationFile: "date,AAA,CASH\n2024-01-01,0.5,0.5\n2024-01-02,0.6,0.4\n2024-01-05,0.8,0.2\n",
		loader.PricesFile:     "date,AAA\n2024-01-01,10\n2024-01-02,11\n2024-01-03,12\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	r, err := report.Open(dir, report.DefaultSettings())
	if err != nil {
		t.Fatalf("report.Open() unexpected error: %v", err)
	}
	return r
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
}

func TestAnalystFunctions(t *testing.T) {
	lib := NewLibrary(AnalystFunctions(testReport(t)))

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"Summary", nil, "Sharpe Ratio"},
		{"Overview", map[string]any{"window": "all"}, "+21.00%"},
		{"Transactions", map[string]any{"date": "2024-01-03"}, "Buy"},
		{"Cash", nil, "Cash Balance"},
		{"Recommendation", nil, "buy 20.0%"},
		{"Asset", map[string]any{"ticker": "AAA"}, "+20.00%"},
		{"Market", map[string]any{"years": float64(1)}, "No market indicator available"},
		{"Topic", map[string]any{"topic": "sharpe"}, "Sharpe ratio"},
		{"Topic", nil, "pad documentation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(lib, tt.name, tt.args)
			if resp.ID != "1" || resp.Name != tt.name {
				t.Errorf("response ID, Name = %q, %q, want 1, %q", resp.ID, resp.Name, tt.name)
			}
			if e, ok := resp.Response["error"]; ok {
				t.Fatalf("%s() error: %v", tt.name, e)
			}
			out, _ := resp.Response["output"].(string)
			if !strings.Contains(out, tt.want) {
				t.Errorf("%s() output is missing %q:\n%s", tt.name, tt.want, out)
			}
		})
	}
}

func TestAnalystFunctionErrors(t *testing.T) {
	lib := NewLibrary(AnalystFunctions(testReport(t)))

	tests := []struct {
		name string
		args map[string]any
	}{
		{"Unknown", nil},
		{"Summary", map[string]any{"date": "someday"}},
		{"Summary", map[string]any{"benchmark": "NASDAQ"}},
		{"Overview", map[string]any{"window": "century"}},
		{"Asset", nil},
		{"Asset", map[string]any{"ticker": 42}},
		{"Market", map[string]any{"years": "ten"}},
		{"Topic", map[string]any{"topic": "nothing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(lib, tt.name, tt.args)
			if _, ok := resp.Response["error"].(string); !ok {
				t.Errorf("%s(%v) response = %v, want an error", tt.name, tt.args, resp.Response)
			}
		})
	}
}

func TestDeclarations(t *testing.T) {
	r := testReport(t)
	analyst := NewAnalyst(DefaultModel, r)
	trader := NewTrader(DefaultModel)
	a := New(&strings.Builder{}, strings.NewReader(""), DefaultModel, trader, analyst)

	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Trader" || decls[1].Name != "Analyst" {
		t.Errorf("facilitator declarations = %v, want Trader and Analyst", decls)
	}

	seen := map[string]bool{}
	for _, d := range analyst.Config.Tools[0].FunctionDeclarations {
		if seen[d.Name] {
			t.Errorf("duplicate declaration %q", d.Name)
		}
		seen[d.Name] = true
		if d.Description == "" {
			t.Errorf("declaration %q has no description", d.Name)
		}
	}
}

func TestExpertCallInvalidQuestion(t *testing.T) {
	e := NewTrader(DefaultModel)
	resp := e.Call(context.Background(), "2", map[string]any{"question": 3})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Call() response = %v, want an error", resp.Response)
	}
	// The chat is not started.
	resp = e.Call(context.Background(), "3", map[string]any{"question": "hello"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("Call() response = %v, want an error", resp.Response)
	}
}
