package models

import (
	"fmt"
	"time"
)

// QuotationStatus is the state of a quotation attached to a quote-type booking.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "Draft"
	QuotationSent     QuotationStatus = "Sent"
	QuotationAccepted QuotationStatus = "Accepted"
	QuotationDeclined QuotationStatus = "Declined"
)

// ParseQuotationStatus validates a raw quotation status string.
func ParseQuotationStatus(s string) (QuotationStatus, error) {
	switch QuotationStatus(s) {
	case QuotationDraft, QuotationSent, QuotationAccepted, QuotationDeclined:
		return QuotationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown quotation status: %s", s)
	}
}

// QuotationItem is one line of an itemized price proposal.
type QuotationItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unitPrice"`
}

// Quotation is the itemized price proposal on a quote-type booking.
// TotalAmount is the sum of quantity x unit price over Items, persisted
// redundantly so earnings queries never re-derive it.
type Quotation struct {
	Status      QuotationStatus `bson:"status" json:"status"`
	Items       []QuotationItem `bson:"items,omitempty" json:"items,omitempty"`
	TotalAmount float64         `bson:"total_amount" json:"totalAmount"`
	SentAt      *time.Time      `bson:"sent_at,omitempty" json:"sentAt,omitempty"`
	ResolvedAt  *time.Time      `bson:"resolved_at,omitempty" json:"resolvedAt,omitempty"`
}
