package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/analytics/date"
	"github.com/google/subcommands"
)

type assetCmd struct {
	start string
	date  string
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "display the summary of an asset" }
func (*assetCmd) Usage() string {
	return `pad asset [-s <start>] [-d <date>] <ticker>

  Displays the latest fundamentals and technicals of an asset with their
  change against the previous row, its current weight, and its return and max
  drawdown between the start and the reporting date.

  Without a ticker, lists the assets having fundamentals.
`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start of the performance range, defaults to the first portfolio date.")
	f.StringVar(&c.date, "d", "", "Reporting date, defaults to the last portfolio date.")
}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := openReport()
	if r == nil {
		return status
	}
	if f.NArg() == 0 {
		tickers, err := r.Tickers()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println(strings.Join(tickers, "\n"))
		return subcommands.ExitSuccess
	}

	to, err := r.AsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	from, _ := r.Data.Portfolio.First()
	if c.start != "" {
		if from, err = r.AsOf(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	status = subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		if s := render(r.Asset(ticker, date.NewRange(from, to))); s != subcommands.ExitSuccess {
			status = s
		}
	}
	return status
}
