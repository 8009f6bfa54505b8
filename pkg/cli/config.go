package cli

// Config represents command configuration.
//
// It is populated from flags by the root command; there is no
// configuration file.
type Config struct {
	// Text is the value of --text, rendered inside the heading.
	Text string

	// DebugMode indicates if the CLI should produce additional
	// debug output on stderr.
	DebugMode bool
}

// Must should be used for Cobra initialize commands that can return an error
// to enforce that they do not produce errors.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
