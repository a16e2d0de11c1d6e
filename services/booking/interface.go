package booking

import (
	"context"
	"time"

	bookingRepo "hudumahub/database/repository/booking"
	providerRepo "hudumahub/database/repository/provider"
	userRepo "hudumahub/database/repository/user"
	"hudumahub/models"
	ai "hudumahub/services/intelligence"
	"hudumahub/services/notification"

	"github.com/hibiken/asynq"
)

// BookingRequestInput is the customer's initial request.
type BookingRequestInput struct {
	ProviderID     string             `json:"providerId" binding:"required"`
	ServiceDate    time.Time          `json:"serviceDate" binding:"required"`
	BookingType    models.BookingType `json:"bookingType" binding:"required"`
	RequestDetails string             `json:"requestDetails"`
}

// BookingService drives the booking lifecycle. Every mutation persists the
// full record and notifies the counterparty of the change.
type BookingService interface {
	RequestBooking(ctx context.Context, customerID string, input BookingRequestInput) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, callerID string) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.Booking, error)

	AcceptBooking(ctx context.Context, bookingID, providerID string) (*models.Booking, error)
	DeclineBooking(ctx context.Context, bookingID, providerID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, callerID string) (*models.Booking, error)

	SendQuotation(ctx context.Context, bookingID, providerID string, items []models.QuotationItem) (*models.Booking, error)
	AcceptQuotation(ctx context.Context, bookingID, customerID string) (*models.Booking, error)
	DeclineQuotation(ctx context.Context, bookingID, customerID string) (*models.Booking, error)

	ConfirmAndPay(ctx context.Context, bookingID, customerID string) (*models.Booking, *models.PaymentIntentResult, error)
	StartJob(ctx context.Context, bookingID, providerID, otp string) (*models.Booking, error)
	CompleteJob(ctx context.Context, bookingID, providerID string) (*models.Booking, error)
	PayInvoice(ctx context.Context, bookingID, customerID string) (*models.Booking, *models.PaymentIntentResult, error)

	AddReview(ctx context.Context, bookingID, customerID string, rating int, text string) (*models.Booking, error)
	AppendChatMessage(ctx context.Context, bookingID, senderID, text string) (*models.Booking, error)

	ProviderEarnings(ctx context.Context, providerID string) (*models.EarningsSummary, error)
	DecideBooking(ctx context.Context, bookingID string) (*models.BookingDecision, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
	Notifier     notification.NotificationService
	Payments     PaymentHandler
	Oracle       ai.DecisionOracle
	TaskQueue    *asynq.Client
}
