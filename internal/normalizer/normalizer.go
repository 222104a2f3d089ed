// Package normalizer converts one raw export row plus its source metadata
// into one canonical transaction. Normalization is pure: no I/O, no shared
// state, exactly one output row per input row.
package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/dateutils"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/etlerror"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/rules"
)

// Normalizer applies the compiled ruleset to raw records.
type Normalizer struct {
	rules *rules.Ruleset
}

// New creates a Normalizer over the given ruleset.
func New(rs *rules.Ruleset) *Normalizer {
	return &Normalizer{rules: rs}
}

// Normalize builds a NormalizedTransaction from one raw record. The
// transaction_id stays empty; the pipeline assigns it after the global sort.
// Missing required columns and unparseable amounts yield a FieldError; bad
// date text yields a ParseError.
func (n *Normalizer) Normalize(kind models.SourceKind, accountID string, record models.RawRecord) (models.NormalizedTransaction, error) {
	rawDate, err := requireColumn(record, models.ColTransactionDate)
	if err != nil {
		return models.NormalizedTransaction{}, err
	}
	rawPosted, err := requireColumn(record, models.ColPostDate)
	if err != nil {
		return models.NormalizedTransaction{}, err
	}
	rawDescription, err := requireColumn(record, models.ColDescription)
	if err != nil {
		return models.NormalizedTransaction{}, err
	}
	rawAmount, err := requireColumn(record, models.ColAmount)
	if err != nil {
		return models.NormalizedTransaction{}, err
	}

	date, err := dateutils.NormalizeDate(models.ColTransactionDate, rawDate)
	if err != nil {
		return models.NormalizedTransaction{}, err
	}
	posted, err := dateutils.NormalizeDate(models.ColPostDate, rawPosted)
	if err != nil {
		return models.NormalizedTransaction{}, err
	}

	// Sign convention is pass-through from the source; only the formatting
	// is normalized, to exactly two fraction digits.
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return models.NormalizedTransaction{}, &etlerror.FieldError{
			Column: models.ColAmount,
			Value:  rawAmount,
			Reason: "not a valid decimal number",
		}
	}

	description := strings.TrimSpace(rawDescription)
	categoryID, subcategoryID := n.rules.Categorize(description)

	return models.NormalizedTransaction{
		Date:          date,
		PostedDate:    posted,
		AccountID:     accountID,
		Amount:        amount.StringFixed(2),
		Merchant:      n.rules.Merchant(description),
		Description:   description,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		PaymentMethod: string(n.rules.ClassifyPayment(kind, description)),
		IsTransfer:    n.rules.IsTransfer(description),
		Notes:         strings.TrimSpace(record[models.ColMemo]),
	}, nil
}

func requireColumn(record models.RawRecord, column string) (string, error) {
	value, ok := record[column]
	if !ok {
		return "", &etlerror.FieldError{Column: column, Reason: "required column is missing"}
	}
	return value, nil
}
