package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// envOverride maps an env key (without the FIBSEQ_ prefix) to the flag(s) it
// shadows and a function applying its value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

var envOverrides = []envOverride{
	{"N", []string{"n"}, func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return apperrors.ConfigError{Message: "invalid " + EnvPrefix + "N value", Cause: err}
		}
		c.N = parsed
		return nil
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) error {
		c.LogLevel = v
		return nil
	}},
	{"METRICS", []string{"metrics"}, func(c *AppConfig, v string) error {
		c.Metrics = parseBoolEnv(v, c.Metrics)
		return nil
	}},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive), returning defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// applyEnvOverrides applies FIBSEQ_* values for flags not set explicitly.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(cfg, val); err != nil {
				return err
			}
		}
	}
	return nil
}
