package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/agbru/fibseq/internal/app"
	apperrors "github.com/agbru/fibseq/internal/errors"
)

// fibseq prints the leading Fibonacci terms (11 by default).
func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		// flag.FlagSet already reported its own parse errors.
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "fibseq: %v\n", err)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}
	os.Exit(application.Run(os.Stdout))
}
