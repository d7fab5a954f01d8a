package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/psdkit/cmd/psdmask/logger"
	"github.com/joshuapare/psdkit/psd/printer"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	logEnabled bool
	logDir     string
)

var rootCmd = &cobra.Command{
	Use:   "psdmask",
	Short: "Decode layer mask data from layered image documents",
	Long: `psdmask decodes the layer mask / adjustment layer data section and the
surrounding layer extra data field of layered image documents, given the byte
offset of the structure within a file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		return logger.Init(logger.Options{
			Enabled: logEnabled,
			LogDir:  logDir,
			Level:   level,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logEnabled, "log", false, "Write a JSON log file")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Directory for log files (default ~/.psdmask/logs)")
}

func execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "err", err)
	}
	_ = logger.Close()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// newPrinter returns a printer on stdout honoring the global flags.
func newPrinter() *printer.Printer {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts)
}
