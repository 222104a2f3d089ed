// Package run contains the command that executes the full ETL pipeline.
package run

import (
	"github.com/spf13/cobra"

	"github.com/hansinirajesh92/finances-tracker-dashboard/cmd/root"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/pipeline"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/store"
)

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full normalization pipeline",
	Long: `Read every configured raw export, normalize and classify each row,
then write the sorted, numbered transaction table plus the unmatched-rows
review table.`,
	Run: runFunc,
}

func runFunc(cmd *cobra.Command, args []string) {
	cfg, err := root.LoadConfig()
	if err != nil {
		root.Log.Fatalf("Configuration error: %v", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	ruleset, err := store.NewRuleStore(cfg.Rules.File, logger).LoadRuleset()
	if err != nil {
		root.Log.Fatalf("Error loading rules: %v", err)
	}

	summary, err := pipeline.New(cfg, ruleset, logger).Run()
	if err != nil {
		root.Log.Fatalf("Pipeline failed: %v", err)
	}

	root.Log.Infof("Wrote %s (%d rows)", cfg.OutputPath(), summary.Total)
	if summary.Unmatched > 0 {
		root.Log.Warnf("Wrote %s (%d rows) - review and extend the category rules", cfg.UnmatchedPath(), summary.Unmatched)
	}
}
