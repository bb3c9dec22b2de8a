// Package watch implements the polling change-detection loop: hash the
// watched file on every tick, compare against the last observation,
// and write a backup on mismatch.
package watch

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"filebak/internal/backup"
	"filebak/internal/config"
	"filebak/internal/errors"
	"filebak/internal/fingerprint"
)

// Detector owns the poll state for a single watched file. It is not
// safe for concurrent use and does not need to be: ticks are driven
// strictly sequentially by Run, so last is mutated by exactly one
// invocation at a time.
type Detector struct {
	target string
	quiet  bool

	// last is the fingerprint from the most recent successful
	// observation; nil means no baseline yet.
	last *fingerprint.Fingerprint

	writer *backup.Writer
	logger *zap.Logger

	// Out receives the per-change notice lines (stdout by default).
	Out io.Writer
}

var (
	startingLabel = color.New(color.FgCyan).SprintFunc()
	changedLabel  = color.New(color.FgGreen).SprintFunc()
)

func NewDetector(cfg *config.Options, w *backup.Writer, logger *zap.Logger) *Detector {
	return &Detector{
		target: cfg.WatchFile,
		quiet:  cfg.Quiet,
		writer: w,
		logger: logger,
		Out:    os.Stdout,
	}
}

// Prime caches the current fingerprint as the baseline without making
// a backup. This is the startup path when no starting backup was
// requested; the watched file must be readable.
func (d *Detector) Prime() error {
	fp, err := fingerprint.File(d.target)
	if err != nil {
		return errors.HashError("unable to hash file", err)
	}
	d.last = &fp
	d.logger.Debug("baseline cached", zap.Stringer("fingerprint", fp))
	return nil
}

// Tick performs one observation of the watched file: hash, compare,
// and back up on mismatch (or when no baseline exists yet). Any
// failure is fatal to the watch; the caller must not continue ticking
// after a non-nil return.
func (d *Detector) Tick(now time.Time) error {
	fp, err := fingerprint.File(d.target)
	if err != nil {
		return errors.HashError("unable to hash file", err)
	}

	if d.last != nil && *d.last == fp {
		return nil
	}

	ts := Timestamp(now)
	if !d.quiet {
		if d.last == nil {
			fmt.Fprintf(d.Out, "%s %s: %s\n", startingLabel("Making a starting backup."), ts, fp)
		} else {
			fmt.Fprintf(d.Out, "%s %s: %s\n", changedLabel("File changed!"), ts, fp)
		}
	}

	artifact, err := d.writer.Backup(d.target, ts)
	if err != nil {
		return err
	}
	d.logger.Debug("backup written",
		zap.String("artifact", artifact),
		zap.Stringer("fingerprint", fp),
	)

	d.last = &fp
	return nil
}
