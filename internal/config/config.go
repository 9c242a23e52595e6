// Package config parses command-line flags and FIBSEQ_* environment
// variables into an AppConfig.
package config

import (
	"flag"
	"io"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
)

const (
	// EnvPrefix is prepended to every environment variable the tool reads.
	EnvPrefix = "FIBSEQ_"

	// DefaultCount is the number of terms printed when no count is given.
	DefaultCount = 11
)

// AppConfig holds the resolved runtime configuration.
type AppConfig struct {
	// N is the number of leading terms to generate. Non-positive values
	// produce an empty sequence.
	N int
	// LogLevel is the zerolog level name for diagnostics on stderr.
	LogLevel string
	// Metrics dumps the Prometheus text exposition to stderr after the run.
	Metrics bool
	// Version prints the build version and exits.
	Version bool
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Priority is CLI flag > environment variable > default.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments after the program name.
//   - errorWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -h was given, or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{}
	fs.IntVar(&cfg.N, "n", DefaultCount, "Number of leading Fibonacci terms to print.")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error).")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Write Prometheus metrics to stderr after the run.")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks settings that flag parsing cannot. The count is
// deliberately unchecked: negative counts are valid and yield no terms.
func (c AppConfig) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	return nil
}
