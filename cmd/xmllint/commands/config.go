package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xmllint/internal/config"
	"github.com/thoreinstein/xmllint/internal/errors"
)

// configFormat holds the value of the --format flag.
var configFormat string

// configForce holds the value of the init --force flag.
var configForce bool

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "output format: yaml, toml, json")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect xmllint configuration",
	Long: `Inspect the effective xmllint configuration.

Values come from, in increasing precedence: defaults, .xmllint.yaml (current
directory, then the user config directory), a .env file, XMLLINT_*
environment variables, and command flags.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show effective configuration
  xmllint config

  # Show as TOML
  xmllint config show --format toml

  # Get a single value
  xmllint config get xsds_path

See Also: xmllint lint`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the effective configuration in YAML, TOML or JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key, e.g. xsds_path or workers.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to ./.xmllint.yaml",
	Long: `Write the effective configuration to .xmllint.yaml in the current
directory. Combine with flags or XMLLINT_* variables to seed values.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return renderConfig(cmd.OutOrStdout(), appConfig, configFormat)
}

// renderConfig writes cfg in the given format.
func renderConfig(out io.Writer, cfg config.Config, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "", "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", format),
			"Use one of: yaml, toml, json")
	}
	if err != nil {
		return errors.Wrapf(err, "marshaling config as %s", format)
	}

	_, err = out.Write(data)
	return errors.Wrap(err, "writing config")
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !viper.IsSet(key) {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	path := filepath.Join(".", config.FileName+"."+config.FileType)
	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", path),
			"Pass --force to overwrite it")
	}

	if err := config.WriteFile(path, appConfig); err != nil {
		return errors.NewSystemError(err, "Check permissions on the current directory")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
