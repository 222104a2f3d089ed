// Package rules contains the command for inspecting and exporting the
// classification rules.
package rules

import (
	"github.com/spf13/cobra"

	"github.com/hansinirajesh92/finances-tracker-dashboard/cmd/root"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/store"
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active classification rules",
	Long: `Show where the classification rules come from and how many are
loaded. With --export, write the active rules to the configured rules YAML
file so they can be edited.`,
	Run: rulesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&root.Export, "export", false, "Write the active rules to the rules YAML file")
}

func rulesFunc(cmd *cobra.Command, args []string) {
	cfg, err := root.LoadConfig()
	if err != nil {
		root.Log.Fatalf("Configuration error: %v", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ruleStore := store.NewRuleStore(cfg.Rules.File, logger)

	doc, err := ruleStore.LoadRules()
	if err != nil {
		root.Log.Fatalf("Error loading rules: %v", err)
	}

	root.Log.Infof("Category rules: %d", len(doc.Categories))
	root.Log.Infof("Merchant rules: %d", len(doc.Merchants))
	root.Log.Infof("Transfer pattern: %s", doc.TransferPattern)

	if root.Export {
		if err := ruleStore.SaveRules(doc); err != nil {
			root.Log.Fatalf("Error exporting rules: %v", err)
		}
		root.Log.Infof("Rules written to %s", cfg.Rules.File)
	}
}
