// Package cmd implements the pad command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analytics/report"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Register the subcommands and the global flags, defaulting to the configuration.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	config = cfg

	flag.StringVar(&config.DataDir, "data", config.DataDir, "Path to the data folder.")
	flag.StringVar(&config.LogLevel, "log", config.LogLevel, "Log level (debug, info, warn, error).")
	flag.BoolVar(&verbose, "v", false, "Verbose output, same as -log debug.")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&overviewCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")
	c.Register(&cashCmd{}, "reports")
	c.Register(&recommendCmd{}, "reports")
	c.Register(&assetCmd{}, "reports")
	c.Register(&marketCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "assistant")
	return nil
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	config  Config
	verbose bool
)

// openReport sets up the logs and loads the data folder.
func openReport() (*report.Report, subcommands.ExitStatus) {
	level := config.LogLevel
	if verbose {
		level = "debug"
	}
	SetupLog(os.Stderr, level)

	r, err := report.Open(config.DataDir, config.Settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data folder %q: %v\n", config.DataDir, err)
		return nil, subcommands.ExitFailure
	}
	log.WithField("dir", config.DataDir).Debug("report ready")
	return r, subcommands.ExitSuccess
}

// render prints the markdown document or the error.
func render(doc string, err error) subcommands.ExitStatus {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
