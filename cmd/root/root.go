// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/common"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/config"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finances-etl",
		Short: "Normalize and categorize raw bank-export CSV files.",
		Long: `finances-etl ingests raw bank-export CSV files from the configured
accounts, normalizes them into one canonical transaction table, and classifies
each row by category, payment method, and transfer status.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finances-etl!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}

	// Flags shared by the data-processing commands
	RawDir    string
	OutDir    string
	RulesFile string

	// Flags for the categorize command
	Description string
	Kind        string

	// Flags for the rules command
	Export bool
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&RawDir, "raw-dir", "", "Directory containing the raw export files (overrides config)")
	Cmd.PersistentFlags().StringVar(&OutDir, "out-dir", "", "Directory for the output tables (overrides config)")
	Cmd.PersistentFlags().StringVar(&RulesFile, "rules", "", "Rules YAML file (overrides config)")
}

// LoadConfig builds the application configuration and applies any flag
// overrides, then points the shared logger at the configured level/format.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	if RawDir != "" {
		cfg.Data.RawDir = RawDir
	}
	if OutDir != "" {
		cfg.Data.OutDir = OutDir
	}
	if RulesFile != "" {
		cfg.Rules.File = RulesFile
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
	common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
	return cfg, nil
}
