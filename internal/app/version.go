package app

import (
	"fmt"
	"io"
)

// Version is the build version, overridden at link time with
// -ldflags "-X github.com/agbru/fibseq/internal/app.Version=...".
var Version = "dev"

// PrintVersion writes the program version to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fibseq %s\n", Version)
}
