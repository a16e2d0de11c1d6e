package booking

import (
	"context"
	"fmt"
	"time"

	"hudumahub/models"
)

// PayInvoice settles a completed job. Only reachable once the booking is
// Completed and, for quote bookings, the quotation was accepted.
func (s *DefaultBookingService) PayInvoice(ctx context.Context, bookingID, customerID string) (*models.Booking, *models.PaymentIntentResult, error) {
	b, err := s.loadForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, nil, err
	}
	if b.Status != models.StatusCompleted {
		return nil, nil, ErrInvoiceNotDue
	}
	if b.IsQuote() && (b.Quotation == nil || b.Quotation.Status != models.QuotationAccepted) {
		return nil, nil, ErrInvoiceNotDue
	}
	if b.Paid() {
		return nil, nil, ErrAlreadyPaid
	}

	intent, err := s.Payments.CreateIntent(ctx, b, b.JobValue(), "invoice")
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	b.PaymentDate = &now
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, nil, err
	}

	s.notifyProvider(ctx, b, "invoice_paid", "Invoice paid",
		fmt.Sprintf("%s paid KES %.2f for the completed job.", b.Customer.Name, b.JobValue()))
	return b, intent, nil
}

// ProviderEarnings aggregates the provider's settled completed jobs.
func (s *DefaultBookingService) ProviderEarnings(ctx context.Context, providerID string) (*models.EarningsSummary, error) {
	settled, err := s.Repo.ListSettledByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	summary := SummarizeEarnings(settled)
	return &summary, nil
}
