package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
)

func TestCategorizeFirstMatchWins(t *testing.T) {
	rs := DefaultRuleset()

	tests := []struct {
		name        string
		description string
		category    string
		subcategory string
	}{
		{"Rent", "ACH RENT SUNRISE APTS", "cat_housing", "cat_rent"},
		{"Utilities", "CHASE ONLINE BILLPAY CITY ELECTRIC", "cat_housing", "cat_utilities"},
		{"Groceries", "FRESHMART #204", "cat_food", "cat_groceries"},
		{"Dining lowercase", "bella pizza downtown", "cat_food", "cat_dining"},
		{"Payroll no subcategory", "ACME PAYROLL DIRECT DEP", "cat_income", ""},
		{"Transfer", "CHASE CREDIT CARD PAYMENT", "cat_transfers", ""},
		{"Interest", "CHASE SAVINGS INTEREST", "cat_interest", ""},
		{"No match", "MYSTERY VENDOR 42", models.CategoryUncategorized, ""},
		{"Empty description", "", models.CategoryUncategorized, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category, subcategory := rs.Categorize(tc.description)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.subcategory, subcategory)
		})
	}
}

// An earlier rule whose match text is a substring of a later rule's match
// text wins: order encodes priority.
func TestCategorizeOrderWins(t *testing.T) {
	rs, err := NewRuleset([]CategoryRule{
		{Pattern: `STORE`, CategoryID: "cat_first"},
		{Pattern: `SUPER STORE`, CategoryID: "cat_second", SubcategoryID: "cat_never"},
	}, nil, DefaultTransferPattern)
	require.NoError(t, err)

	category, subcategory := rs.Categorize("SUPER STORE PURCHASE")
	assert.Equal(t, "cat_first", category)
	assert.Equal(t, "", subcategory)
}

func TestCategorizeNeverReturnsEmptyCategory(t *testing.T) {
	rs, err := NewRuleset(nil, nil, DefaultTransferPattern)
	require.NoError(t, err)

	category, subcategory := rs.Categorize("anything at all")
	assert.Equal(t, models.CategoryUncategorized, category)
	assert.Equal(t, "", subcategory)
}

func TestMerchant(t *testing.T) {
	rs := DefaultRuleset()

	tests := []struct {
		name        string
		description string
		merchant    string
	}{
		{"Anchored override", "ACME PAYROLL DIRECT DEP", "Acme Payroll"},
		{"Substring override", "ACH RENT SUNRISE APTS", "Sunrise Apartments"},
		{"Open-ended override", "CHASE ONLINE TRANSFER TO SAVINGS 8841", "Chase Online Transfer"},
		{"Override is case-insensitive", "chase credit card payment", "Chase Credit Card Payment"},
		{"Fallback title-cases", "MYSTERY VENDOR 42", "Mystery Vendor 42"},
		{"Fallback trims", "  corner store  ", "Corner Store"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.merchant, rs.Merchant(tc.description))
		})
	}
}

// The anchored payroll override must not fire on longer descriptions.
func TestMerchantAnchoredPatternDoesNotMatchSuffix(t *testing.T) {
	rs := DefaultRuleset()
	assert.Equal(t, "Acme Payroll Direct Dep Extra", rs.Merchant("ACME PAYROLL DIRECT DEP EXTRA"))
}

func TestMerchantFirstMatchWins(t *testing.T) {
	rs, err := NewRuleset(nil, []MerchantRule{
		{Pattern: `COFFEE`, Merchant: "First Coffee"},
		{Pattern: `COFFEE CORNER`, Merchant: "Never Seen"},
	}, DefaultTransferPattern)
	require.NoError(t, err)

	assert.Equal(t, "First Coffee", rs.Merchant("COFFEE CORNER #12"))
}

func TestIsTransfer(t *testing.T) {
	rs := DefaultRuleset()

	assert.True(t, rs.IsTransfer("CHASE ONLINE TRANSFER TO SAVINGS"))
	assert.True(t, rs.IsTransfer("CHASE CREDIT CARD PAYMENT"))
	assert.True(t, rs.IsTransfer("chase online transfer"))
	assert.False(t, rs.IsTransfer("ACH RENT SUNRISE APTS"))
	assert.False(t, rs.IsTransfer("ACME PAYROLL DIRECT DEP"))
}

func TestClassifyPayment(t *testing.T) {
	rs := DefaultRuleset()

	tests := []struct {
		name        string
		kind        models.SourceKind
		description string
		expected    models.PaymentMethod
	}{
		{"Payroll", models.KindChecking, "ACME PAYROLL DIRECT DEP", models.PaymentDirectDeposit},
		{"Billpay", models.KindChecking, "CHASE ONLINE BILLPAY CITY ELECTRIC", models.PaymentACH},
		{"ACH", models.KindChecking, "ACH RENT SUNRISE APTS", models.PaymentACH},
		{"Autopay", models.KindChecking, "CHASE AUTOPAY NETWAVE INTERNET", models.PaymentACH},
		{"Transfer", models.KindChecking, "CHASE CREDIT CARD PAYMENT", models.PaymentTransfer},
		{"Card fallback", models.KindCreditCard, "BELLA PIZZA", models.PaymentCard},
		{"Unknown", models.KindChecking, "BELLA PIZZA", models.PaymentUnknown},
		{"Savings unknown", models.KindSavings, "CHASE SAVINGS INTEREST", models.PaymentUnknown},
		// Payroll outranks the transfer pattern when both phrases occur.
		{"Payroll beats transfer", models.KindChecking, "PAYROLL ONLINE TRANSFER", models.PaymentDirectDeposit},
		// The credit_card fallback only applies after the specific signals.
		{"Transfer beats card", models.KindCreditCard, "CHASE CREDIT CARD PAYMENT", models.PaymentTransfer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rs.ClassifyPayment(tc.kind, tc.description))
		})
	}
}

func TestNewRulesetRejectsBadPatterns(t *testing.T) {
	_, err := NewRuleset([]CategoryRule{{Pattern: `(`, CategoryID: "cat_x"}}, nil, DefaultTransferPattern)
	assert.Error(t, err)

	_, err = NewRuleset(nil, []MerchantRule{{Pattern: `[`, Merchant: "X"}}, DefaultTransferPattern)
	assert.Error(t, err)

	_, err = NewRuleset(nil, nil, `(`)
	assert.Error(t, err)
}

func TestDefaultRulesetCounts(t *testing.T) {
	rs := DefaultRuleset()
	assert.Equal(t, 19, rs.CategoryRuleCount())
	assert.Equal(t, 9, rs.MerchantRuleCount())
}
