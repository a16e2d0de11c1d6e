package booking

import (
	"fmt"
	"strings"

	"hudumahub/models"
)

// ValidateQuotationItems checks the invariant every line item must satisfy
// before a quotation can be sent: non-empty description, quantity > 0 and
// unit price >= 0.
func ValidateQuotationItems(items []models.QuotationItem) error {
	if len(items) == 0 {
		return fmt.Errorf("quotation must contain at least one line item")
	}
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			return fmt.Errorf("line item %d: description must not be empty", i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("line item %d: quantity must be greater than zero", i+1)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("line item %d: unit price must not be negative", i+1)
		}
	}
	return nil
}

// QuotationTotal derives the total amount of an itemized proposal.
func QuotationTotal(items []models.QuotationItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// quotationTransitions is the sub-machine for quotations: Draft -> Sent ->
// Accepted or Declined. Declined is terminal; there is no re-quoting.
var quotationTransitions = map[models.QuotationStatus]map[models.QuotationStatus]bool{
	models.QuotationDraft: {models.QuotationSent: true},
	models.QuotationSent: {
		models.QuotationAccepted: true,
		models.QuotationDeclined: true,
	},
	models.QuotationAccepted: {},
	models.QuotationDeclined: {},
}

// CanTransitionQuotation reports whether the quotation transition is legal.
func CanTransitionQuotation(from, to models.QuotationStatus) bool {
	next, ok := quotationTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}
