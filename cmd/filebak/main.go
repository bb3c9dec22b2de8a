// cmd/filebak/main.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"filebak/internal/backup"
	"filebak/internal/config"
	"filebak/internal/errors"
	"filebak/internal/logging"
	"filebak/internal/watch"
)

var version = "0.1.0"

var (
	cfg        = config.New()
	intervalMs uint64
)

var rootCmd = &cobra.Command{
	Use:   "filebak <file>",
	Short: "Watch a file and make backups whenever a change is detected",
	Long: `Filebak polls a single file at a fixed interval and copies it to a
timestamped backup (<file>.<timestamp>.bak) every time its content
changes. Detection is by content hash, so touching the file without
changing it never triggers a backup. The process runs until stopped
with Ctrl-C or a line on standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.WatchFile = args[0]
		cfg.Interval = time.Duration(intervalMs) * time.Millisecond

		if err := cfg.Validate(); err != nil {
			return err
		}

		// Past argument validation; runtime failures should not
		// echo the usage text.
		cmd.SilenceUsage = true

		logWrapper, err := logging.NewLogger(cfg.LogLevel)
		if err != nil {
			return errors.ConfigError("initializing logger", err)
		}
		defer logWrapper.Sync()
		logger := logWrapper.WithRunID()

		writer := &backup.Writer{Compress: cfg.Compress}
		detector := watch.NewDetector(cfg, writer, logger)

		if cfg.StartingBackup {
			// Force a backup of the starting version.
			if err := detector.Tick(time.Now()); err != nil {
				return err
			}
		} else {
			// Cache the starting fingerprint so the first real
			// change is what triggers the first backup.
			if err := detector.Prime(); err != nil {
				return err
			}
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// A line (or EOF) on stdin also stops the watch.
		go func() {
			_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
			cancel()
		}()

		return detector.Run(ctx, cfg.Interval)
	},
}

func init() {
	rootCmd.Flags().Uint64VarP(&intervalMs, "interval", "i", 5000,
		"polling interval for file change checks, in milliseconds")
	rootCmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false,
		"be silent under normal operation")
	rootCmd.Flags().BoolVarP(&cfg.StartingBackup, "starting-backup", "s", false,
		"make a backup of the file upon startup")
	rootCmd.Flags().BoolVar(&cfg.Compress, "compress", false,
		"write zstd-compressed backups (.bak.zst)")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		"diagnostic log level (debug, info, warn, error)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the filebak version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("filebak", version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
