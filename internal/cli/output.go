// Package cli holds the presentation layer of fibseq.
//
// Display* functions write to an [io.Writer]; Format* functions return the
// string without performing I/O.
package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
)

// FormatSequence renders a sequence the way Go prints a slice: "[0 1 1 2]".
func FormatSequence(seq fibonacci.Sequence) string {
	return seq.String()
}

// DisplaySequence writes the formatted sequence followed by a newline.
func DisplaySequence(out io.Writer, seq fibonacci.Sequence) error {
	if _, err := fmt.Fprintln(out, FormatSequence(seq)); err != nil {
		return apperrors.OutputError{Cause: err}
	}
	return nil
}
