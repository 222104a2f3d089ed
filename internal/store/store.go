// Package store loads and saves the rule configuration backing the ETL's
// classification. Rules live in a YAML file; when none is present the
// compiled-in defaults apply.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/rules"
)

// RulesFile is the YAML document holding the ordered rule lists and the
// shared transfer pattern. YAML sequences preserve authored order, which is
// the point: order encodes rule priority.
type RulesFile struct {
	TransferPattern string               `yaml:"transfer_pattern"`
	Categories      []rules.CategoryRule `yaml:"categories"`
	Merchants       []rules.MerchantRule `yaml:"merchants"`
}

// RuleStore manages loading and saving of rule data.
type RuleStore struct {
	RulesPath string
	logger    logging.Logger
}

// NewRuleStore creates a store reading from the given rules file path.
func NewRuleStore(rulesPath string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{RulesPath: rulesPath, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations:
// as given, under ./config/, and under ~/.config/finances-tracker/.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "finances-tracker", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules reads the rules document. A missing file is not an error: the
// compiled-in defaults are returned so a fresh checkout works out of the box.
func (s *RuleStore) LoadRules() (RulesFile, error) {
	defaults := RulesFile{
		TransferPattern: rules.DefaultTransferPattern,
		Categories:      rules.DefaultCategoryRules(),
		Merchants:       rules.DefaultMerchantRules(),
	}

	filePath, err := s.FindConfigFile(s.RulesPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.RulesPath).Debug("Rules file not found, using built-in rules")
			return defaults, nil
		}
		return RulesFile{}, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return RulesFile{}, fmt.Errorf("error reading rules file: %w", err)
	}

	var doc RulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RulesFile{}, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	// Sections omitted from the file fall back to the defaults individually.
	if doc.TransferPattern == "" {
		doc.TransferPattern = defaults.TransferPattern
	}
	if len(doc.Categories) == 0 {
		doc.Categories = defaults.Categories
	}
	if len(doc.Merchants) == 0 {
		doc.Merchants = defaults.Merchants
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "categories", Value: len(doc.Categories)},
		logging.Field{Key: "merchants", Value: len(doc.Merchants)},
	).Debug("Loaded rules")
	return doc, nil
}

// LoadRuleset loads and compiles the rule configuration.
func (s *RuleStore) LoadRuleset() (*rules.Ruleset, error) {
	doc, err := s.LoadRules()
	if err != nil {
		return nil, err
	}
	return rules.NewRuleset(doc.Categories, doc.Merchants, doc.TransferPattern)
}

// SaveRules writes a rules document to the store's path, creating parent
// directories as needed. Used to bootstrap an editable rules.yaml from the
// built-in tables.
func (s *RuleStore) SaveRules(doc RulesFile) error {
	filePath := s.RulesPath
	if existing, err := s.FindConfigFile(s.RulesPath); err == nil {
		filePath = existing
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "categories", Value: len(doc.Categories)},
		logging.Field{Key: "merchants", Value: len(doc.Merchants)},
	).Info("Saved rules")
	return nil
}
