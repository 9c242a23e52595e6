// Package logging provides the small structured-logging interface used by
// fibseq, backed by zerolog or by the standard library logger.
package logging
