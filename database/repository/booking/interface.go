package bookingRepo

import (
	"context"

	"hudumahub/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Update replaces the persisted booking with the given record.
	// Bookings are always written back whole; there is no partial-patch diffing.
	Update(ctx context.Context, booking *models.Booking) error
	// ListByCustomer retrieves all bookings where the given user is the customer.
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// ListByProvider retrieves all bookings where the given provider is booked.
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	// ListSettledByProvider retrieves the provider's completed bookings whose
	// invoices have been paid, for earnings aggregation.
	ListSettledByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
}
