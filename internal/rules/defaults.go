package rules

// DefaultTransferPattern is the fixed disjunction of transfer-indicating
// phrases. It is the single definition used for both transfer flagging and
// payment-method inference.
const DefaultTransferPattern = `ONLINE TRANSFER|CREDIT CARD PAYMENT`

// DefaultCategoryRules returns the built-in category rule list. Order is
// significant: the first matching rule wins.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Pattern: `SUNRISE APTS|RENT`, CategoryID: "cat_housing", SubcategoryID: "cat_rent"},
		{Pattern: `CITY ELECTRIC`, CategoryID: "cat_housing", SubcategoryID: "cat_utilities"},
		{Pattern: `NETWAVE INTERNET`, CategoryID: "cat_housing", SubcategoryID: "cat_internet"},
		{Pattern: `FRESHMART|SUPERSAVER`, CategoryID: "cat_food", SubcategoryID: "cat_groceries"},
		{Pattern: `BELLA PIZZA|SUSHI YAMA|COFFEE CORNER`, CategoryID: "cat_food", SubcategoryID: "cat_dining"},
		{Pattern: `METROCARD|TRANSIT`, CategoryID: "cat_transport", SubcategoryID: "cat_transit"},
		{Pattern: `QUICKFUEL`, CategoryID: "cat_transport", SubcategoryID: "cat_gas"},
		{Pattern: `AUTOCARE`, CategoryID: "cat_transport", SubcategoryID: "cat_auto"},
		{Pattern: `PHARMAPLUS`, CategoryID: "cat_health", SubcategoryID: "cat_pharmacy"},
		{Pattern: `HLTH INS|INS PREMIUM`, CategoryID: "cat_health", SubcategoryID: "cat_insurance"},
		{Pattern: `STREAMFLIX`, CategoryID: "cat_entertainment", SubcategoryID: "cat_streaming"},
		{Pattern: `MOVIEHOUSE`, CategoryID: "cat_entertainment", SubcategoryID: "cat_events"},
		{Pattern: `STYLEHUB`, CategoryID: "cat_shopping", SubcategoryID: "cat_clothes"},
		{Pattern: `HOMEGOODS`, CategoryID: "cat_shopping", SubcategoryID: "cat_homegoods"},
		{Pattern: `PAYROLL`, CategoryID: "cat_income"},
		{Pattern: `MONTHLY SERVICE FEE|FOREIGN TRANSACTION FEE`, CategoryID: "cat_fees"},
		{Pattern: `SAVINGS INTEREST`, CategoryID: "cat_interest"},
		{Pattern: `ONLINE TRANSFER|CREDIT CARD PAYMENT`, CategoryID: "cat_transfers"},
		{Pattern: `CLDBOX|CLOUDBOX|STORAGE PLAN`, CategoryID: "cat_entertainment", SubcategoryID: "cat_streaming"},
	}
}

// DefaultMerchantRules returns the built-in merchant overrides, first match
// wins. Anchored and open-ended patterns are both in use.
func DefaultMerchantRules() []MerchantRule {
	return []MerchantRule{
		{Pattern: `^ACME PAYROLL DIRECT DEP$`, Merchant: "Acme Payroll"},
		{Pattern: `ACH RENT SUNRISE APTS`, Merchant: "Sunrise Apartments"},
		{Pattern: `CHASE ONLINE BILLPAY CITY ELECTRIC`, Merchant: "City Electric"},
		{Pattern: `CHASE AUTOPAY NETWAVE INTERNET`, Merchant: "NetWave Internet"},
		{Pattern: `CHASE ONLINE TRANSFER.*`, Merchant: "Chase Online Transfer"},
		{Pattern: `CHASE CREDIT CARD PAYMENT`, Merchant: "Chase Credit Card Payment"},
		{Pattern: `CHASE MONTHLY SERVICE FEE`, Merchant: "Chase Service Fee"},
		{Pattern: `CHASE FOREIGN TRANSACTION FEE`, Merchant: "Chase Fee"},
		{Pattern: `CHASE SAVINGS INTEREST`, Merchant: "Chase Savings Interest"},
	}
}

// DefaultRuleset compiles the built-in rule tables. The defaults are known
// to compile, so failure here is a programming error.
func DefaultRuleset() *Ruleset {
	rs, err := NewRuleset(DefaultCategoryRules(), DefaultMerchantRules(), DefaultTransferPattern)
	if err != nil {
		panic("rules: default ruleset failed to compile: " + err.Error())
	}
	return rs
}
