package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type marketCmd struct {
	years int
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the macroeconomic and market indicators" }
func (*marketCmd) Usage() string {
	return `pad market [-years <n>]

  Displays the last and previous readings of every indicator of the markets
  folder, with their year over year trend. See 'pad topic market'.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Restrict indicators to their last years, 0 for the full history.")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := openReport()
	if r == nil {
		return status
	}
	return render(r.Market(c.years))
}
