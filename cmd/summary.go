package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date      string
	benchmark string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the key risk and return metrics" }
func (*summaryCmd) Usage() string {
	return `pad summary [-d <date>] [-b <benchmark>]

  Displays the Sharpe and Sortino ratios, the max drawdown, the annualized
  return, the effective number of assets, the turnover, and alpha and beta
  against the reference benchmark. With -b, the same metrics are computed for
  the benchmark, side by side.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reporting date, defaults to the last portfolio date.")
	f.StringVar(&c.benchmark, "b", "", "Benchmark to compare with.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := openReport()
	if r == nil {
		return status
	}
	on, err := r.AsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return render(r.Summary(on, c.benchmark))
}
