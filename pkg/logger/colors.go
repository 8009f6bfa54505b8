package logger

import (
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
)

var (
	Blue   = color.New(color.FgHiBlue).SprintFunc()
	Red    = color.New(color.FgHiRed).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

func init() {
	// Log lines go to stderr, so color depends on stderr rather than stdout.
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
}
