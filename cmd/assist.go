package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/analytics/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pad assist [<prompt>]

  Start an interactive session with the AI assistant. The prompt, if any, is
  sent first. The key is read from GEMINI_API_KEY and the model from PAD_MODEL.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var initialPrompt string
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	r, status := openReport()
	if r == nil {
		return status
	}

	var cc *genai.ClientConfig
	if config.APIKey != "" {
		cc = &genai.ClientConfig{APIKey: config.APIKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, config.Model,
		agent.NewTrader(config.Model),
		agent.NewAnalyst(config.Model, r),
	)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
