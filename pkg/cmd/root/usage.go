package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/airplanedev/heading/pkg/logger"
	"github.com/kr/text"
	"github.com/spf13/cobra"
)

// Usage prints the usage for a command.
//
// Cobra calls it after a usage error with the output redirected to a
// buffer, and prints that buffer to stderr.
func usage(cmd *cobra.Command) error {
	w := cmd.OutOrStderr()
	fmt.Fprintf(w, "%s\n", logger.Bold("Usage:"))
	fmt.Fprintf(w, "  %s\n", cmd.UseLine())
	writeFlags(w, cmd)
	fmt.Fprintf(w, "\nRun '%s --help' for more information.\n", cmd.CommandPath())
	return nil
}

// Help prints the help for a command.
func help(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()

	desc := cmd.Short
	if cmd.Long != "" {
		desc = cmd.Long
	}
	fmt.Fprintf(w, "%s\n\n", desc)
	fmt.Fprintf(w, "%s\n", logger.Bold("Usage:"))
	fmt.Fprintf(w, "  %s\n", cmd.UseLine())

	writeFlags(w, cmd)

	if cmd.HasExample() {
		// Example is already un-indented by heredoc.Doc in New.
		fmt.Fprintf(w, "\n%s\n", logger.Bold("Examples:"))
		fmt.Fprintf(w, "%s\n", text.Indent(strings.TrimSpace(cmd.Example), "  "))
	}

	fmt.Fprintln(w)
}

func writeFlags(w io.Writer, cmd *cobra.Command) {
	if flags := cmd.LocalFlags().FlagUsages(); flags != "" {
		// A leading newline makes heredoc un-indent the first line too.
		s := heredoc.Doc("\n" + flags)
		fmt.Fprintf(w, "\n%s\n", logger.Bold("Flags:"))
		fmt.Fprintf(w, "%s", text.Indent(s, "  "))
	}
}
