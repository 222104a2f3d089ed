package rules

import (
	"strings"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
)

// Description indicators consulted by the payment cascade, matched as
// case-insensitive substrings.
var (
	payrollIndicators = []string{"PAYROLL"}
	achIndicators     = []string{"BILLPAY", "ACH", "AUTOPAY"}
)

// ClassifyPayment infers the payment channel from the source kind and the
// description. The conditions form a priority cascade and the first hit wins:
// payroll and ACH indicators outrank the generic transfer pattern even when a
// transfer phrase co-occurs, and the credit_card fallback applies only once
// the more specific signals are exhausted.
func (rs *Ruleset) ClassifyPayment(kind models.SourceKind, description string) models.PaymentMethod {
	desc := strings.ToUpper(description)

	if containsAny(desc, payrollIndicators) {
		return models.PaymentDirectDeposit
	}
	if containsAny(desc, achIndicators) {
		return models.PaymentACH
	}
	if rs.IsTransfer(description) {
		return models.PaymentTransfer
	}
	if kind == models.KindCreditCard {
		return models.PaymentCard
	}
	return models.PaymentUnknown
}

func containsAny(s string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(s, ind) {
			return true
		}
	}
	return false
}
