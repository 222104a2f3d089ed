// Package categorize handles one-off classification of a single description,
// useful when authoring new rules.
package categorize

import (
	"github.com/spf13/cobra"

	"github.com/hansinirajesh92/finances-tracker-dashboard/cmd/root"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/store"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Classify a single transaction description",
	Long: `Run one description through the category, merchant, transfer, and
payment-method rules and print the result. Handy for checking what a new rule
would match before a full run.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to classify")
	Cmd.Flags().StringVarP(&root.Kind, "kind", "k", string(models.KindChecking), "Source kind (checking, savings, credit_card)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	cfg, err := root.LoadConfig()
	if err != nil {
		root.Log.Fatalf("Configuration error: %v", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ruleset, err := store.NewRuleStore(cfg.Rules.File, logger).LoadRuleset()
	if err != nil {
		root.Log.Fatalf("Error loading rules: %v", err)
	}

	kind := models.SourceKind(root.Kind)
	categoryID, subcategoryID := ruleset.Categorize(root.Description)

	root.Log.Infof("Category: %s", categoryID)
	if subcategoryID != "" {
		root.Log.Infof("Subcategory: %s", subcategoryID)
	}
	root.Log.Infof("Merchant: %s", ruleset.Merchant(root.Description))
	root.Log.Infof("Payment method: %s", ruleset.ClassifyPayment(kind, root.Description))
	root.Log.Infof("Transfer: %t", ruleset.IsTransfer(root.Description))
}
