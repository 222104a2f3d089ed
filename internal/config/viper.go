package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
)

// Config represents the complete application configuration. It is built once
// at startup and passed explicitly into the pipeline; nothing reads it
// through process-wide state.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		RawDir        string `mapstructure:"raw_dir" yaml:"raw_dir"`
		OutDir        string `mapstructure:"out_dir" yaml:"out_dir"`
		OutputFile    string `mapstructure:"output_file" yaml:"output_file"`
		UnmatchedFile string `mapstructure:"unmatched_file" yaml:"unmatched_file"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Sources []models.SourceDescriptor `mapstructure:"sources" yaml:"sources"`
}

// OutputPath returns the full path of the primary output table.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Data.OutDir, c.Data.OutputFile)
}

// UnmatchedPath returns the full path of the unmatched review table.
func (c *Config) UnmatchedPath() string {
	return filepath.Join(c.Data.OutDir, c.Data.UnmatchedFile)
}

// ResolvedSources returns the configured sources with relative paths anchored
// at the raw data directory.
func (c *Config) ResolvedSources() []models.SourceDescriptor {
	out := make([]models.SourceDescriptor, len(c.Sources))
	for i, s := range c.Sources {
		if !filepath.IsAbs(s.Path) {
			s.Path = filepath.Join(c.Data.RawDir, s.Path)
		}
		out[i] = s
	}
	return out
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then FINTRACK_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finances-tracker")
	v.AddConfigPath(".finances-tracker")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file
			// should not silently look like a missing one.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.Sources) == 0 {
		config.Sources = DefaultSources()
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultSources returns the built-in source registry: one descriptor per
// raw export, tying the file to an account and its kind.
func DefaultSources() []models.SourceDescriptor {
	return []models.SourceDescriptor{
		{Path: "chase_checking_raw.csv", AccountID: "acc_checking", Kind: models.KindChecking},
		{Path: "chase_savings_raw.csv", AccountID: "acc_savings", Kind: models.KindSavings},
		{Path: "chase_credit_card_raw.csv", AccountID: "acc_cc1", Kind: models.KindCreditCard},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.raw_dir", filepath.Join("data", "raw"))
	v.SetDefault("data.out_dir", filepath.Join("data", "sample"))
	v.SetDefault("data.output_file", "transactions.csv")
	v.SetDefault("data.unmatched_file", "transactions_unmatched.csv")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("rules.file", "rules.yaml")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.OutputFile == "" || config.Data.UnmatchedFile == "" {
		return fmt.Errorf("output file names must not be empty")
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	seen := make(map[string]bool, len(config.Sources))
	for _, s := range config.Sources {
		switch s.Kind {
		case models.KindChecking, models.KindSavings, models.KindCreditCard:
		default:
			return fmt.Errorf("source %s: unknown kind %q", s.Path, s.Kind)
		}
		if s.AccountID == "" {
			return fmt.Errorf("source %s: account_id must not be empty", s.Path)
		}
		if seen[s.Path] {
			return fmt.Errorf("source %s: duplicate path", s.Path)
		}
		seen[s.Path] = true
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger based on the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
