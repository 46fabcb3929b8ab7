package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"erreport/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false

	// logLevel is raised to Debug once --debug has been parsed.
	logLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
)

func main() {
	logger, err := newConsoleLogger(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "erreport",
	Short: "Component-tagged error reports for Go packages",
	Long: `erreport manages the per-package wrap sites used by erreport/pkg/report.

Each package gets a generated report_gen.go declaring its component identity
and the wrap helpers, so errors render as:
  {name@version} file.go:12 -> file.go:40 -> root cause`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally so logStructuredError can check it
		cli.SetDebugMode(debug)
		setLogLevel(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logs and verbose error chains")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewGenCmd(logger))
}

// printError writes the terse chain, or the verbose one in debug mode.
func printError(err error) {
	if cli.IsDebugMode() {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// setLogLevel switches logLevel to Debug in debug mode and to Error otherwise.
func setLogLevel(debug bool) {
	if debug {
		logLevel.SetLevel(zap.DebugLevel)
		return
	}
	logLevel.SetLevel(zap.ErrorLevel)
}

// newConsoleLogger returns a human-friendly console logger with timestamps
// whose level follows level.
func newConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = level
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
