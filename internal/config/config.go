// Package config provides configuration management for xmllint using Viper.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/paths"
	"github.com/thoreinstein/xmllint/pkg/fileutil"
)

const (
	// FileName is the base name of the project config file.
	FileName = ".xmllint"
	// FileType is the config file format.
	FileType = "yaml"
	// EnvPrefix prefixes environment overrides, e.g. XMLLINT_XSDS_PATH.
	EnvPrefix = "XMLLINT"
)

// Configuration keys.
const (
	KeyRoot       = "root"
	KeyXSDsPath   = "xsds_path"
	KeyXMLsPath   = "xmls_path"
	KeyReportPath = "report_path"
	KeyWorkers    = "workers"
	KeyLogFormat  = "log_format"
)

// Config is the effective configuration of one run. It is a plain value:
// build it once with Load and pass it by value.
type Config struct {
	Root       string `mapstructure:"root" yaml:"root" toml:"root" json:"root"`
	XSDsPath   string `mapstructure:"xsds_path" yaml:"xsds_path" toml:"xsds_path" json:"xsds_path"`
	XMLsPath   string `mapstructure:"xmls_path" yaml:"xmls_path" toml:"xmls_path" json:"xmls_path"`
	ReportPath string `mapstructure:"report_path" yaml:"report_path,omitempty" toml:"report_path,omitempty" json:"report_path,omitempty"`
	Workers    int    `mapstructure:"workers" yaml:"workers" toml:"workers" json:"workers"`
	LogFormat  string `mapstructure:"log_format" yaml:"log_format" toml:"log_format" json:"log_format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// .env never overrides variables already set in the environment
	_ = godotenv.Load()

	viper.SetConfigName(FileName)
	viper.SetConfigType(FileType)

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Every key needs a default so Unmarshal sees environment overrides.
	viper.SetDefault(KeyRoot, ".")
	viper.SetDefault(KeyXSDsPath, "")
	viper.SetDefault(KeyXMLsPath, "")
	viper.SetDefault(KeyReportPath, "")
	viper.SetDefault(KeyWorkers, 0)
	viper.SetDefault(KeyLogFormat, "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound), os.IsNotExist(err):
			return Config{}, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrInvalidConfig)
		default:
			return Config{}, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	return cfg, nil
}

// Used returns the config file viper read, or "" when defaults apply.
func Used() string {
	return viper.ConfigFileUsed()
}

// WriteFile writes cfg as YAML to path, replacing any existing file.
func WriteFile(path string, cfg Config) error {
	if err := fileutil.AtomicWriteYAML(path, cfg); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
