package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/xmllint/internal/config"
	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/lint"
	"github.com/thoreinstein/xmllint/internal/logging"
	"github.com/thoreinstein/xmllint/internal/progress"
	"github.com/thoreinstein/xmllint/internal/report"
	"github.com/thoreinstein/xmllint/internal/validator"
)

// lintJSON holds the value of the --json flag.
var lintJSON bool

func init() {
	flags := lintCmd.Flags()
	flags.String("root", "", "directory all other paths are relative to (default: current directory)")
	flags.String("xsds", "", "schema directory, relative to --root")
	flags.String("xmls", "", "document directory, relative to --root")
	flags.String("report", "", "report directory, relative to --root (no report when empty)")
	flags.Int("workers", 0, "files processed in parallel per phase (0: one per CPU)")
	flags.BoolVar(&lintJSON, "json", false, "print the recorded errors as JSON instead of a text summary")

	bindLintFlags()
	rootCmd.AddCommand(lintCmd)
}

// bindLintFlags lets lint flags override their config keys.
func bindLintFlags() {
	for key, flag := range map[string]string{
		config.KeyRoot:       "root",
		config.KeyXSDsPath:   "xsds",
		config.KeyXMLsPath:   "xmls",
		config.KeyReportPath: "report",
		config.KeyWorkers:    "workers",
	} {
		if err := viper.BindPFlag(key, lintCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate XML documents against their XSD schemas",
	Long: `Load every *.xsd file under --xsds, indexed by targetNamespace, then
validate every *.xml file under --xmls against the schema registered for the
xmlns attribute of its root element.

Documents without an xmlns attribute, or whose namespace has no schema, are
skipped. Malformed files and schema violations are recorded; only the first
violation of each document is reported. The command exits non-zero when any
error was recorded.

Paths are relative to --root and must stay inside it. Flags override the
xsds_path, xmls_path, report_path, root and workers config keys.`,
	Example: `  # Lint with paths from .xmllint.yaml
  xmllint lint

  # Explicit paths and a JSON report
  xmllint lint --xsds schemas --xmls messages --report build/reports

  # Machine-readable output
  xmllint lint --xsds schemas --xmls messages --json -q

See Also: xmllint config show`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func runLint(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	out := cmd.OutOrStdout()

	printer := progress.New(out)
	if quiet || lintJSON {
		printer = progress.Discard()
	}

	engine := lint.NewEngine(
		lint.WithLogger(logger),
		lint.WithProgress(printer),
	)

	result, err := engine.Run(ctx, lintOptions(appConfig))
	if err != nil {
		return err
	}

	if err := summarize(out, result); err != nil {
		return err
	}

	return report.Verdict(result)
}

// lintOptions maps the effective configuration onto engine options.
func lintOptions(cfg config.Config) lint.Options {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	return lint.Options{
		Root:       root,
		XSDsPath:   cfg.XSDsPath,
		XMLsPath:   cfg.XMLsPath,
		ReportPath: cfg.ReportPath,
		Workers:    cfg.Workers,
	}
}

func summarize(out io.Writer, result *validator.Result) error {
	if lintJSON {
		return validator.NewReporter(out, validator.FormatJSON).Report(result)
	}
	if quiet {
		return nil
	}

	return validator.NewReporter(out, validator.FormatText).Report(result)
}
