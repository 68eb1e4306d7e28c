package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/report"
	"github.com/google/subcommands"
)

// datedCmd is a report subcommand only taking a reporting date.
type datedCmd struct {
	date string
}

func (c *datedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reporting date, defaults to the last portfolio date.")
}

func (c *datedCmd) execute(view func(*report.Report) func(date.Date) (string, error)) subcommands.ExitStatus {
	r, status := openReport()
	if r == nil {
		return status
	}
	on, err := r.AsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return render(view(r)(on))
}

type transactionsCmd struct{ datedCmd }

func (*transactionsCmd) Name() string { return "transactions" }
func (*transactionsCmd) Synopsis() string {
	return "display the trades inferred from the allocation changes"
}
func (*transactionsCmd) Usage() string {
	return `pad transactions [-d <date>]

  Lists the trades inferred from consecutive allocations up to the date, with
  their entry and exit prices and returns, and the total rotation.
  The tolerance is set by PAD_TOLERANCE. See 'pad topic transactions'.
`
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(func(r *report.Report) func(date.Date) (string, error) { return r.Transactions })
}

type cashCmd struct{ datedCmd }

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "display the cash weight over time" }
func (*cashCmd) Usage() string {
	return `pad cash [-d <date>]

  Displays the CASH column of the allocations up to the date.
`
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(func(r *report.Report) func(date.Date) (string, error) { return r.Cash })
}

type recommendCmd struct{ datedCmd }

func (*recommendCmd) Name() string     { return "recommend" }
func (*recommendCmd) Synopsis() string { return "compare the current allocation with the next planned one" }
func (*recommendCmd) Usage() string {
	return `pad recommend [-d <date>]

  Compares the allocation in force on the date with the first allocation
  dated after it, and tells what to buy, sell or hold.
`
}

func (c *recommendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(func(r *report.Report) func(date.Date) (string, error) { return r.Recommendation })
}
