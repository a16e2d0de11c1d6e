package booking

import (
	"context"
	"fmt"

	"hudumahub/models"
	"hudumahub/utils"

	"go.uber.org/zap"
)

// DecideBooking runs the decision oracle on a pending quote request and
// applies the verdict through the same accept/decline transitions a human
// provider would use. It only fires for quote bookings whose provider has
// opted into auto-accept.
func (s *DefaultBookingService) DecideBooking(ctx context.Context, bookingID string) (*models.BookingDecision, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsQuote() {
		return nil, ErrQuotationRequired
	}
	if b.Status != models.StatusPendingProviderConfirmation {
		return nil, ErrInvalidTransition
	}

	provider, err := s.ProviderRepo.GetByID(b.Provider.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if !provider.AIAutoAcceptEnabled {
		return nil, ErrAutoAcceptDisabled
	}
	if s.Oracle == nil {
		return nil, fmt.Errorf("decision oracle is not configured")
	}

	decision, err := s.Oracle.Decide(ctx, b)
	if err != nil {
		return nil, err
	}

	switch decision.Action {
	case models.DecisionAccept:
		_, err = s.AcceptBooking(ctx, bookingID, b.Provider.ID)
	case models.DecisionDecline:
		_, err = s.DeclineBooking(ctx, bookingID, b.Provider.ID)
	default:
		return nil, fmt.Errorf("oracle returned unknown action %q", decision.Action)
	}
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("auto-decision applied",
		zap.String("bookingId", bookingID),
		zap.String("action", decision.Action),
		zap.String("reason", decision.Reason))
	return decision, nil
}
