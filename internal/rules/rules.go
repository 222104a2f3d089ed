// Package rules implements the ordered, first-match-wins classification rules:
// category/subcategory assignment, merchant-name canonicalization, transfer
// detection, and payment-method inference. Rule order is part of the contract;
// narrow patterns are authored before broad catch-alls.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
)

// CategoryRule maps a description pattern to a category and optional
// subcategory. Patterns are regular expressions matched case-insensitively
// anywhere in the description.
type CategoryRule struct {
	Pattern       string `yaml:"pattern" mapstructure:"pattern"`
	CategoryID    string `yaml:"category_id" mapstructure:"category_id"`
	SubcategoryID string `yaml:"subcategory_id,omitempty" mapstructure:"subcategory_id"`
}

// MerchantRule maps a description pattern to a canonical merchant display
// name. Patterns may be anchored ("^...$") or open-ended ("PREFIX.*").
type MerchantRule struct {
	Pattern  string `yaml:"pattern" mapstructure:"pattern"`
	Merchant string `yaml:"merchant" mapstructure:"merchant"`
}

type compiledCategoryRule struct {
	re   *regexp.Regexp
	rule CategoryRule
}

type compiledMerchantRule struct {
	re   *regexp.Regexp
	rule MerchantRule
}

// Ruleset holds the compiled rule lists plus the single shared transfer
// pattern. The same pattern drives both is_transfer detection and the
// transfer branch of the payment cascade, so the two can never diverge.
type Ruleset struct {
	categories []compiledCategoryRule
	merchants  []compiledMerchantRule
	transfer   *regexp.Regexp
}

var titleCaser = cases.Title(language.English)

// NewRuleset compiles the given rule lists, preserving their order exactly.
func NewRuleset(categories []CategoryRule, merchants []MerchantRule, transferPattern string) (*Ruleset, error) {
	rs := &Ruleset{}

	for _, r := range categories {
		re, err := compileInsensitive(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("category rule %q: %w", r.Pattern, err)
		}
		rs.categories = append(rs.categories, compiledCategoryRule{re: re, rule: r})
	}

	for _, r := range merchants {
		re, err := compileInsensitive(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("merchant rule %q: %w", r.Pattern, err)
		}
		rs.merchants = append(rs.merchants, compiledMerchantRule{re: re, rule: r})
	}

	transfer, err := compileInsensitive(transferPattern)
	if err != nil {
		return nil, fmt.Errorf("transfer pattern %q: %w", transferPattern, err)
	}
	rs.transfer = transfer

	return rs, nil
}

func compileInsensitive(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

// Categorize returns the category and subcategory of the first matching rule.
// When no rule matches it returns the uncategorized sentinel and an empty
// subcategory; this is the designed fallback, never an error.
func (rs *Ruleset) Categorize(description string) (categoryID, subcategoryID string) {
	for _, c := range rs.categories {
		if c.re.MatchString(description) {
			return c.rule.CategoryID, c.rule.SubcategoryID
		}
	}
	return models.CategoryUncategorized, ""
}

// Merchant returns the canonical merchant name for a description: the first
// matching override wins, otherwise a best-effort cleanup (trim plus
// title-casing). The fallback never fails; override rules are expected to
// supersede it incrementally.
func (rs *Ruleset) Merchant(description string) string {
	trimmed := strings.TrimSpace(description)
	for _, m := range rs.merchants {
		if m.re.MatchString(trimmed) {
			return m.rule.Merchant
		}
	}
	return titleCaser.String(strings.ToLower(trimmed))
}

// IsTransfer reports whether the description matches the shared transfer
// pattern. Detection is independent of categorization: a transfer-looking
// row can still carry a more specific category.
func (rs *Ruleset) IsTransfer(description string) bool {
	return rs.transfer.MatchString(description)
}

// CategoryRuleCount returns the number of category rules loaded.
func (rs *Ruleset) CategoryRuleCount() int { return len(rs.categories) }

// MerchantRuleCount returns the number of merchant rules loaded.
func (rs *Ruleset) MerchantRuleCount() int { return len(rs.merchants) }
