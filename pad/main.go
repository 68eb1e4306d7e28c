// Command pad computes performance and risk analytics of a portfolio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/analytics/cmd"
	"github.com/etnz/analytics/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	if err := cmd.Register(commander); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	// Serves shell completion requests, and returns otherwise.
	completion(commander).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the subcommands and their flags for shell completion.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predict.Nothing })
	root.Flags["data"] = predict.Dirs("*")

	topics, _ := docs.GetAllTopics()
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predict.Nothing })
		switch sc.Name() {
		case "topic":
			sub.Args = predict.Set(topics)
		case "overview":
			sub.Flags["w"] = predict.Set{"day", "month", "year", "all"}
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}
