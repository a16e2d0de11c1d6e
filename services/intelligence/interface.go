package ai

import (
	"context"

	"hudumahub/models"
)

// DecisionOracle decides whether a pending quote request should be accepted
// or declined on behalf of a provider who has opted into auto-accept. The
// verdict is advisory: callers apply it through the same accept/decline
// transitions a human provider would use.
type DecisionOracle interface {
	Decide(ctx context.Context, booking *models.Booking) (*models.BookingDecision, error)
}
