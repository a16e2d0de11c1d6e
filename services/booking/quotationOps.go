package booking

import (
	"context"
	"fmt"
	"time"

	"hudumahub/models"
)

// SendQuotation validates the provider's line items, derives the total and
// sends the quotation to the customer.
func (s *DefaultBookingService) SendQuotation(ctx context.Context, bookingID, providerID string, items []models.QuotationItem) (*models.Booking, error) {
	b, err := s.loadForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if !b.IsQuote() || b.Quotation == nil {
		return nil, ErrQuotationRequired
	}
	if Terminal(b.Status) {
		return nil, ErrInvalidTransition
	}
	if !CanTransitionQuotation(b.Quotation.Status, models.QuotationSent) {
		return nil, ErrQuotationResolved
	}
	if err := ValidateQuotationItems(items); err != nil {
		return nil, err
	}

	now := time.Now()
	b.Quotation.Items = items
	b.Quotation.TotalAmount = QuotationTotal(items)
	b.Quotation.Status = models.QuotationSent
	b.Quotation.SentAt = &now

	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, b, "quotation_sent", "Quotation received",
		fmt.Sprintf("%s sent a quotation of KES %.2f for your request.", b.Provider.Name, b.Quotation.TotalAmount))
	return b, nil
}

// AcceptQuotation records the customer's acceptance, unlocking confirm-and-pay.
func (s *DefaultBookingService) AcceptQuotation(ctx context.Context, bookingID, customerID string) (*models.Booking, error) {
	return s.resolveQuotation(ctx, bookingID, customerID, models.QuotationAccepted)
}

// DeclineQuotation records the customer's refusal. Declined is terminal.
func (s *DefaultBookingService) DeclineQuotation(ctx context.Context, bookingID, customerID string) (*models.Booking, error) {
	return s.resolveQuotation(ctx, bookingID, customerID, models.QuotationDeclined)
}

func (s *DefaultBookingService) resolveQuotation(ctx context.Context, bookingID, customerID string, verdict models.QuotationStatus) (*models.Booking, error) {
	b, err := s.loadForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}
	if !b.IsQuote() || b.Quotation == nil {
		return nil, ErrQuotationRequired
	}
	if Terminal(b.Status) {
		return nil, ErrInvalidTransition
	}
	if b.Quotation.Status == models.QuotationDraft {
		return nil, ErrQuotationNotSent
	}
	if !CanTransitionQuotation(b.Quotation.Status, verdict) {
		return nil, ErrQuotationResolved
	}

	now := time.Now()
	b.Quotation.Status = verdict
	b.Quotation.ResolvedAt = &now

	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if verdict == models.QuotationAccepted {
		s.notifyProvider(ctx, b, "quotation_accepted", "Quotation accepted",
			fmt.Sprintf("%s accepted your quotation of KES %.2f.", b.Customer.Name, b.Quotation.TotalAmount))
	} else {
		s.notifyProvider(ctx, b, "quotation_declined", "Quotation declined",
			fmt.Sprintf("%s declined your quotation.", b.Customer.Name))
	}
	return b, nil
}
