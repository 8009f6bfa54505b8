package logger

import (
	"fmt"
	"io"
	"os"
)

var (
	// EnableDebug determines if debug logs are emitted.
	EnableDebug bool

	// Output is where debug lines are written. Standard output is reserved
	// for the rendered HTML, so this defaults to stderr.
	Output io.Writer = os.Stderr
)

// Debug writes a log message to Output, followed by a newline, if the CLI
// is executing in debug mode. Printf-style formatting is applied to msg
// using args.
func Debug(msg string, args ...interface{}) {
	if !EnableDebug {
		return
	}
	write(Output, "["+Blue("debug")+"] ", msg, args)
}

// ErrorTo writes a red "Error:" line to w. Commands pass their own error
// stream so that tests can capture it.
func ErrorTo(w io.Writer, msg string, args ...interface{}) {
	write(w, Red("Error:")+" ", msg, args)
}

func write(w io.Writer, prefix, msg string, args []interface{}) {
	if len(args) == 0 {
		// Use Fprint if no args - avoids treating msg like a format string
		fmt.Fprint(w, prefix+msg+"\n")
	} else {
		fmt.Fprintf(w, prefix+msg+"\n", args...)
	}
}
