package root

import (
	"context"
	"fmt"

	"github.com/airplanedev/heading/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// runError marks errors returned after flags were validated. Anything
// else coming out of cobra is a usage error.
type runError struct {
	err error
}

func (e runError) Error() string { return e.err.Error() }
func (e runError) Unwrap() error { return e.err }

// Execute runs cmd with ctx and reports failures on the command's error
// stream. Usage errors are followed by the usage block. A canceled
// context is returned without being printed.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	c, err := cmd.ExecuteContextC(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	w := c.ErrOrStderr()
	logger.ErrorTo(w, "%s", err)

	var re runError
	if !errors.As(err, &re) {
		fmt.Fprintln(w)
		fmt.Fprint(w, c.UsageString())
	}

	return err
}
