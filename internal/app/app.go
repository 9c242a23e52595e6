// Package app wires configuration, logging, generation and output into the
// fibseq command.
package app

import (
	"errors"
	"flag"
	"io"
	"time"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
)

// Application represents one fibseq invocation.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Recorder
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the console logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates an Application by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "fibseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, apperrors.WrapError(err, "parsing configuration")
	}

	app := &Application{
		Config:    cfg,
		Metrics:   metrics.NewRecorder(),
		ErrWriter: errWriter,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, apperrors.ConfigError{Message: "invalid log level", Cause: err}
		}
		app.Logger = logging.NewConsoleLogger(errWriter, "fibseq", level)
	}
	return app, nil
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	a.Logger.Debug("generating sequence", logging.Int("n", a.Config.N), logging.String("version", Version))
	start := time.Now()
	seq := fibonacci.Generate(a.Config.N)
	elapsed := time.Since(start)
	a.Metrics.Observe(seq)

	if err := cli.DisplaySequence(out, seq); err != nil {
		a.Logger.Error("failed to print sequence", err, logging.Int("n", a.Config.N))
		return apperrors.ExitCodeFor(err)
	}
	a.Logger.Info("sequence printed",
		logging.Int("terms", len(seq)),
		logging.Uint64("largest_term_bits", largestTermBits(seq)),
		logging.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000),
	)

	if a.Config.Metrics {
		if err := a.Metrics.WriteText(a.ErrWriter); err != nil {
			a.Logger.Error("failed to write metrics", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

func largestTermBits(seq fibonacci.Sequence) uint64 {
	if len(seq) == 0 {
		return 0
	}
	return uint64(seq[len(seq)-1].BitLen())
}

// IsHelpError reports whether err stems from -h/-help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
