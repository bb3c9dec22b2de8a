// internal/config/config.go
package config

import (
	"time"

	"filebak/internal/errors"
)

// Options holds the validated runtime configuration. All values come
// from the command line; there is no file- or environment-based
// configuration.
type Options struct {
	WatchFile      string
	Interval       time.Duration
	Quiet          bool
	StartingBackup bool
	Compress       bool
	LogLevel       string
}

// DefaultInterval is the polling interval used when -i is not given.
const DefaultInterval = 5000 * time.Millisecond

func New() *Options {
	return &Options{
		Interval: DefaultInterval,
		LogLevel: "warn",
	}
}

// Validate checks the options before polling starts. Invalid options
// are configuration errors and must stop the process at startup.
func (o *Options) Validate() error {
	if o.WatchFile == "" {
		return errors.ConfigError("no file to watch given", nil)
	}
	if o.Interval <= 0 {
		return errors.ConfigError("interval must be greater than 0", nil)
	}
	return nil
}
