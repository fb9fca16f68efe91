// Package commands implements the CLI commands for xmllint.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/xmllint/cmd"
	"github.com/thoreinstein/xmllint/internal/config"
	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// openLogFile is the handle behind --log-file, closed by Execute.
var openLogFile *os.File

// configFile holds the value of the --config flag.
var configFile string

// appConfig is the configuration loaded before any command runs.
var appConfig config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress progress and summary output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"append logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./.xmllint.yaml, then the user config dir)")

	rootCmd.Version = cmd.Info().String()
	rootCmd.SetVersionTemplate("xmllint version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	appConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "xmllint",
	Short: "Validate XML documents against their XSD schemas",
	Long: `xmllint validates a directory of XML documents against a directory of
XSD schemas. Each schema is indexed by its targetNamespace; each document is
matched to a schema by the xmlns attribute of its root element.

Every problem found is recorded and the run continues. The run fails when
at least one error was recorded, which makes xmllint usable as a build gate.
Errors can also be written to a JSON report for annotation tooling.`,
	Example: `  # Lint documents under messages/ against schemas under schemas/
  xmllint lint --xsds schemas --xmls messages

  # Also write a JSON report to build/reports
  xmllint lint --xsds schemas --xmls messages --report build/reports

  # Show the effective configuration
  xmllint config show

  See Also: xmllint lint, xmllint config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// debugVerbosity maps XMLLINT_DEBUG onto a -v count.
func debugVerbosity() int {
	val, ok := os.LookupEnv("XMLLINT_DEBUG")
	if !ok {
		return 0
	}
	switch val {
	case "1", "true":
		return 2 // Debug
	case "2":
		return 3 // Trace
	}
	return 0
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass either -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			v = debugVerbosity()
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logFormat
	if format == "" {
		format = viper.GetString(config.KeyLogFormat)
	}

	lc := logging.Config{
		Level:  level,
		Format: logging.Format(format),
		Output: cmd.ErrOrStderr(),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "opening log file %s", logFile), "Check the --log-file path")
		}
		closeLogFile()
		openLogFile = f
		lc.File = f
	}

	logger := logging.New(lc)
	slog.SetDefault(logger)

	logging.ConfigureColor(cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the --log-file handle, if one is open.
func closeLogFile() {
	if openLogFile == nil {
		return
	}
	if err := openLogFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log file: %v\n", err)
	}
	openLogFile = nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer closeLogFile()
	return rootCmd.ExecuteContext(ctx)
}
