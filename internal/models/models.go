// Package models holds the canonical data types shared by the ETL packages.
package models

// SourceKind is the closed set of account kinds a raw export can come from.
type SourceKind string

const (
	KindChecking   SourceKind = "checking"
	KindSavings    SourceKind = "savings"
	KindCreditCard SourceKind = "credit_card"
)

// PaymentMethod is the closed set of payment channels the classifier can infer.
type PaymentMethod string

const (
	PaymentDirectDeposit PaymentMethod = "direct_deposit"
	PaymentACH           PaymentMethod = "ach"
	PaymentTransfer      PaymentMethod = "transfer"
	PaymentCard          PaymentMethod = "card"
	PaymentUnknown       PaymentMethod = "unknown"
)

// CategoryUncategorized is the sentinel assigned when no category rule matches.
const CategoryUncategorized = "cat_uncategorized"

// RawRecord is one row of a raw export, keyed by header column name.
// It is consumed exactly once by normalization.
type RawRecord map[string]string

// Column names expected in every raw export.
const (
	ColTransactionDate = "Transaction Date"
	ColPostDate        = "Post Date"
	ColDescription     = "Description"
	ColAmount          = "Amount"
	ColMemo            = "Memo" // optional
)

// SourceDescriptor ties one raw input file to an account and its kind.
// Descriptors are defined once at configuration time and never mutated.
type SourceDescriptor struct {
	Path      string     `yaml:"path" mapstructure:"path"`
	AccountID string     `yaml:"account_id" mapstructure:"account_id"`
	Kind      SourceKind `yaml:"kind" mapstructure:"kind"`
}

// NormalizedTransaction is the canonical output row. Field order matches the
// primary table's column order; gocsv emits the header from the csv tags.
type NormalizedTransaction struct {
	TransactionID string `csv:"transaction_id"`
	Date          string `csv:"date"`
	PostedDate    string `csv:"posted_date"`
	AccountID     string `csv:"account_id"`
	Amount        string `csv:"amount"`
	Merchant      string `csv:"merchant"`
	Description   string `csv:"description"`
	CategoryID    string `csv:"category_id"`
	SubcategoryID string `csv:"subcategory_id"`
	PaymentMethod string `csv:"payment_method"`
	IsTransfer    bool   `csv:"is_transfer"`
	Notes         string `csv:"notes"`
}

// IsUncategorized reports whether no category rule matched this transaction.
func (t NormalizedTransaction) IsUncategorized() bool {
	return t.CategoryID == CategoryUncategorized
}

// UnmatchedRow is a review copy of an uncategorized transaction, tagged with
// the raw file it came from. It carries no transaction_id.
type UnmatchedRow struct {
	SourceFile    string `csv:"source_file"`
	Date          string `csv:"date"`
	PostedDate    string `csv:"posted_date"`
	AccountID     string `csv:"account_id"`
	Amount        string `csv:"amount"`
	Merchant      string `csv:"merchant"`
	Description   string `csv:"description"`
	CategoryID    string `csv:"category_id"`
	SubcategoryID string `csv:"subcategory_id"`
	PaymentMethod string `csv:"payment_method"`
	IsTransfer    bool   `csv:"is_transfer"`
	Notes         string `csv:"notes"`
}

// NewUnmatchedRow tags a normalized transaction with its originating file.
func NewUnmatchedRow(sourceFile string, t NormalizedTransaction) UnmatchedRow {
	return UnmatchedRow{
		SourceFile:    sourceFile,
		Date:          t.Date,
		PostedDate:    t.PostedDate,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Merchant:      t.Merchant,
		Description:   t.Description,
		CategoryID:    t.CategoryID,
		SubcategoryID: t.SubcategoryID,
		PaymentMethod: t.PaymentMethod,
		IsTransfer:    t.IsTransfer,
		Notes:         t.Notes,
	}
}
