package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analytics"
	"github.com/google/subcommands"
)

type overviewCmd struct {
	date   string
	window string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the portfolio value, returns, weights and value at risk" }
func (*overviewCmd) Usage() string {
	return `pad overview [-d <date>] [-w <window>]

  Displays the portfolio value and its cumulative return over the window,
  next to the benchmarks, the current weights, the best and worst assets and
  the historical Value at Risk over 1 day, 1 month and 1 year.

  Windows are day, month, year or all. See 'pad topic windows'.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reporting date, defaults to the last portfolio date.")
	f.StringVar(&c.window, "w", "all", "Window of the cumulative returns (day, month, year, all).")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := analytics.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	r, status := openReport()
	if r == nil {
		return status
	}
	on, err := r.AsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return render(r.Overview(on, w))
}
