package agent

import (
	"context"
	"fmt"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/docs"
	"github.com/etnz/analytics/report"
	"google.golang.org/genai"
)

// DefaultModel is the model used by the experts when none is configured.
const DefaultModel = "gemini-2.5-flash"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// newFacilitator creates the expert talking to the user.
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user manages an investment portfolio and wants to understand its performance and risks.
			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader creates an expert grounded with Google Search.
func NewTrader(model string) *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
			`),
		},
	}
}

// NewAnalyst creates the expert computing the portfolio analytics of r.
func NewAnalyst(model string, r *report.Report) *Expert {
	lib := AnalystFunctions(r)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst, in charge of the user's portfolio data:
		values, allocations, prices, benchmarks and market indicators.
		It computes performance and risk metrics, the trades, the next move and the market situation.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a quantitative analyst in charge of the user's portfolio.
			Use the available tools to compute figures, never guess them:
			  - Summary for the risk and return metrics,
			  - Overview for the value, returns, weights and Value at Risk,
			  - Transactions and Cash for the portfolio activity,
			  - Recommendation for the next planned allocation,
			  - Asset for a single asset,
			  - Market for the macroeconomic situation,
			  - Topic for the definition of the metrics.
			`),
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// tool creates a Func returning a markdown document.
func tool(name, description string, params map[string]*genai.Schema, run func(args map[string]any) (string, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: params},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown document.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := run(args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, out)
		},
	}
}

var dateParam = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The reporting date, YYYY-MM-DD. Defaults to the last portfolio date.",
}

// stringArg returns the optional string argument name.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}

// intArg returns the optional integer argument name. JSON numbers are float64.
func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case nil:
		return 0, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}

// asOf parses the "date" argument.
func asOf(r *report.Report, args map[string]any) (date.Date, error) {
	s, err := stringArg(args, "date")
	if err != nil {
		return date.Date{}, err
	}
	d, err := r.AsOf(s)
	if err != nil {
		return d, fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the data and dates\n\n%s", s, must(docs.GetTopic("data")))
	}
	return d, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// dated adapts a report view taking only a reporting date.
func dated(r *report.Report, view func(date.Date) (string, error)) func(map[string]any) (string, error) {
	return func(args map[string]any) (string, error) {
		on, err := asOf(r, args)
		if err != nil {
			return "", err
		}
		return view(on)
	}
}

// AnalystFunctions returns the tools of the Analyst over r.
func AnalystFunctions(r *report.Report) []*Func {
	onlyDate := map[string]*genai.Schema{"date": dateParam}
	return []*Func{
		tool("Summary",
			"Summary computes the Sharpe and Sortino ratios, the max drawdown, the annualized return, the effective number of assets, the turnover, and alpha and beta against the reference benchmark.",
			map[string]*genai.Schema{
				"date": dateParam,
				"benchmark": {
					Type:        genai.TypeString,
					Description: fmt.Sprintf("Optional benchmark to compare with, one of %v.", r.Data.Benchmarks.Names()),
				},
			},
			func(args map[string]any) (string, error) {
				on, err := asOf(r, args)
				if err != nil {
					return "", err
				}
				b, err := stringArg(args, "benchmark")
				if err != nil {
					return "", err
				}
				return r.Summary(on, b)
			}),
		tool("Overview",
			"Overview shows the portfolio value, the cumulative returns of the portfolio and the benchmarks, the current weights, the best and worst assets and the Value at Risk.",
			map[string]*genai.Schema{
				"date": dateParam,
				"window": {
					Type:        genai.TypeString,
					Description: "The window of the cumulative returns: day, month, year or all (default).",
				},
			},
			func(args map[string]any) (string, error) {
				on, err := asOf(r, args)
				if err != nil {
					return "", err
				}
				s, err := stringArg(args, "window")
				if err != nil {
					return "", err
				}
				w, err := analytics.ParseWindow(s)
				if err != nil {
					return "", err
				}
				return r.Overview(on, w)
			}),
		tool("Transactions",
			"Transactions lists the trades inferred from the allocation changes, with entry and exit prices and returns, and the total rotation.",
			onlyDate, dated(r, r.Transactions)),
		tool("Cash",
			"Cash shows the cash weight of the portfolio over time.",
			onlyDate, dated(r, r.Cash)),
		tool("Recommendation",
			"Recommendation compares the current allocation with the next planned one and tells what to buy or sell.",
			onlyDate, dated(r, r.Recommendation)),
		tool("Asset",
			"Asset shows the fundamentals, technicals, weight and performance of a single asset.",
			map[string]*genai.Schema{
				"ticker": {Type: genai.TypeString, Description: "The asset ticker."},
				"from":   {Type: genai.TypeString, Description: "Start of the performance range, YYYY-MM-DD. Defaults to the first portfolio date."},
				"date":   dateParam,
			},
			func(args map[string]any) (string, error) {
				ticker, err := stringArg(args, "ticker")
				if err != nil {
					return "", err
				}
				if ticker == "" {
					tickers, _ := r.Tickers()
					return "", fmt.Errorf("argument 'ticker' is required, known tickers are %v", tickers)
				}
				to, err := asOf(r, args)
				if err != nil {
					return "", err
				}
				from, _ := r.Data.Portfolio.First()
				if s, err := stringArg(args, "from"); err != nil {
					return "", err
				} else if s != "" {
					if from, err = r.AsOf(s); err != nil {
						return "", err
					}
				}
				return r.Asset(ticker, date.NewRange(from, to))
			}),
		tool("Market",
			"Market shows the latest readings and year over year trends of the macroeconomic and market indicators.",
			map[string]*genai.Schema{
				"years": {Type: genai.TypeInteger, Description: "Restrict each indicator to its last years. 0 (default) keeps the full history."},
			},
			func(args map[string]any) (string, error) {
				years, err := intArg(args, "years")
				if err != nil {
					return "", err
				}
				return r.Market(years)
			}),
		tool("Topic",
			"Topic returns the documentation of a metric or of the data files. Use the readme topic to list them.",
			map[string]*genai.Schema{
				"topic": {Type: genai.TypeString, Description: "The topic name, readme by default."},
			},
			func(args map[string]any) (string, error) {
				t, err := stringArg(args, "topic")
				if err != nil {
					return "", err
				}
				if t == "" {
					t = docs.Readme
				}
				return docs.GetTopic(t)
			}),
	}
}
