package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	log "github.com/sirupsen/logrus"
)

// renderMarkdown renders markdown for the terminal, or returns it as is when it cannot.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			return out
		}
	}
	log.WithError(err).Debug("markdown not rendered")
	return md
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }
