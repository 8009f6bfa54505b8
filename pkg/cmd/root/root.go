package root

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/airplanedev/heading/pkg/cli"
	"github.com/airplanedev/heading/pkg/logger"
	"github.com/airplanedev/heading/pkg/markup"
	"github.com/airplanedev/heading/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// New returns a new root cobra command.
func New(c *cli.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heading --text <text>",
		Short: "Print text wrapped in an HTML heading",
		Long:  "Print the given text as an escaped level-1 HTML heading on stdout.",
		Example: heredoc.Doc(`
			heading --text "Hello"
			heading -t "fish & chips"
		`),
		Args:    cobra.NoArgs,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.EnableDebug = c.DebugMode
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd.Context(), cmd.OutOrStdout(), c); err != nil {
				return runError{err}
			}
			return nil
		},
	}

	// Silence usage and errors.
	//
	// Execute prints them, so usage goes to stderr only for usage errors.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.SetUsageFunc(usage)
	cmd.SetHelpFunc(help)
	cmd.SetVersionTemplate("heading version {{.Version}}\n")

	registerFlags(cmd.Flags(), c)
	cli.Must(cmd.MarkFlagRequired("text"))

	return cmd
}

func registerFlags(fs *pflag.FlagSet, c *cli.Config) {
	fs.StringVarP(&c.Text, "text", "t", "", "Text to insert into the heading.")
	fs.BoolVar(&c.DebugMode, "debug", false, "Print debug output to stderr.")
}

// Run runs the root command.
func run(ctx context.Context, out io.Writer, c *cli.Config) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	html := markup.GenerateHTML(c.Text)
	logger.Debug("rendered %d bytes of text into %d bytes of html", len(c.Text), len(html))

	if _, err := fmt.Fprintln(out, html); err != nil {
		return errors.Wrap(err, "write heading")
	}

	return nil
}
