package booking

import (
	"context"
	"fmt"
	"time"

	"hudumahub/models"
	"hudumahub/services/tasks"
	"hudumahub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingFeeAmount is the flat reservation fee (KES) a customer pays when
// confirming a quoted booking.
const BookingFeeAmount = 200.0

// InvoiceDueAfter is how long after completion an invoice falls due.
const InvoiceDueAfter = 7 * 24 * time.Hour

// RequestBooking creates a booking in PendingProviderConfirmation with a
// fresh 4-digit start code. Quote requests to opted-in providers are handed
// to the decision oracle via the task queue.
func (s *DefaultBookingService) RequestBooking(ctx context.Context, customerID string, input BookingRequestInput) (*models.Booking, error) {
	if _, err := models.ParseBookingType(string(input.BookingType)); err != nil {
		return nil, err
	}

	customer, err := s.UserRepo.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	provider, err := s.ProviderRepo.GetByID(input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	otp, err := utils.GenerateBookingOTP()
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:             uuid.New().String(),
		Customer:       customer.Snapshot(),
		Provider:       provider.Snapshot(),
		BookingDate:    time.Now(),
		ServiceDate:    input.ServiceDate,
		Status:         models.StatusPendingProviderConfirmation,
		BookingType:    input.BookingType,
		OTP:            otp,
		RequestDetails: input.RequestDetails,
	}
	if b.IsQuote() {
		b.Quotation = &models.Quotation{Status: models.QuotationDraft}
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.notifyProvider(ctx, b, "booking_requested", "New booking request",
		fmt.Sprintf("%s requested a %s booking for %s.", b.Customer.Name, b.BookingType, b.ServiceDate.Format("Mon, 02 Jan 15:04")))

	if b.IsQuote() && provider.AIAutoAcceptEnabled {
		s.enqueueAutoDecision(b.ID)
	}

	return b, nil
}

// GetBooking returns a booking visible to one of its parties.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, callerID string) (*models.Booking, error) {
	return s.loadFor(ctx, bookingID, callerID)
}

// ListForCustomer returns all bookings where the caller is the customer.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

// ListForProvider returns all bookings where the caller is the provider.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

// AcceptBooking moves a pending request forward: instant bookings confirm
// immediately, quote bookings wait on the customer.
func (s *DefaultBookingService) AcceptBooking(ctx context.Context, bookingID, providerID string) (*models.Booking, error) {
	b, err := s.loadForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}

	target := models.StatusConfirmed
	if b.IsQuote() {
		target = models.StatusPendingCustomerConfirmation
	}
	if !CanTransition(b.Status, target) {
		return nil, ErrInvalidTransition
	}

	b.Status = target
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("%s accepted your booking request.", b.Provider.Name)
	if b.IsQuote() {
		body += " You will receive a quotation shortly."
	}
	s.notifyCustomer(ctx, b, "booking_accepted", "Request accepted", body)
	return b, nil
}

// DeclineBooking cancels a pending request.
func (s *DefaultBookingService) DeclineBooking(ctx context.Context, bookingID, providerID string) (*models.Booking, error) {
	b, err := s.loadForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusPendingProviderConfirmation {
		return nil, ErrInvalidTransition
	}

	b.Status = models.StatusCancelled
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, b, "booking_declined", "Request declined",
		fmt.Sprintf("%s is unable to take your booking request.", b.Provider.Name))
	return b, nil
}

// CancelBooking cancels on behalf of either party. A started job can no
// longer be cancelled, nor can a terminal one.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, callerID string) (*models.Booking, error) {
	b, err := s.loadFor(ctx, bookingID, callerID)
	if err != nil {
		return nil, err
	}
	if !CanCancel(b.Status) {
		return nil, ErrNotCancellable
	}

	b.Status = models.StatusCancelled
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if callerID == b.Customer.ID {
		s.notifyProvider(ctx, b, "booking_cancelled", "Booking cancelled",
			fmt.Sprintf("%s cancelled the booking scheduled for %s.", b.Customer.Name, b.ServiceDate.Format("Mon, 02 Jan")))
	} else {
		s.notifyCustomer(ctx, b, "booking_cancelled", "Booking cancelled",
			fmt.Sprintf("%s cancelled your booking scheduled for %s.", b.Provider.Name, b.ServiceDate.Format("Mon, 02 Jan")))
	}
	return b, nil
}

// ConfirmAndPay is the customer's confirmation of a quoted booking: it
// requires an accepted quotation, raises the booking fee PaymentIntent and
// confirms the booking.
func (s *DefaultBookingService) ConfirmAndPay(ctx context.Context, bookingID, customerID string) (*models.Booking, *models.PaymentIntentResult, error) {
	b, err := s.loadForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, nil, err
	}
	if !CanTransition(b.Status, models.StatusConfirmed) || b.Status != models.StatusPendingCustomerConfirmation {
		return nil, nil, ErrInvalidTransition
	}
	if b.IsQuote() && (b.Quotation == nil || b.Quotation.Status != models.QuotationAccepted) {
		return nil, nil, ErrQuotationNotAccepted
	}

	intent, err := s.Payments.CreateIntent(ctx, b, BookingFeeAmount, "booking_fee")
	if err != nil {
		return nil, nil, err
	}

	b.Status = models.StatusConfirmed
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, nil, err
	}

	s.notifyProvider(ctx, b, "booking_confirmed", "Booking confirmed",
		fmt.Sprintf("%s confirmed the booking for %s. Start code will be provided on site.", b.Customer.Name, b.ServiceDate.Format("Mon, 02 Jan 15:04")))
	return b, intent, nil
}

// StartJob validates the start code and moves a confirmed booking into
// progress. A mismatch changes nothing.
func (s *DefaultBookingService) StartJob(ctx context.Context, bookingID, providerID, otp string) (*models.Booking, error) {
	b, err := s.loadForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, models.StatusInProgress) {
		return nil, ErrInvalidTransition
	}
	if otp != b.OTP {
		return nil, ErrOTPMismatch
	}

	b.Status = models.StatusInProgress
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, b, "booking_started", "Job started",
		fmt.Sprintf("%s has started the job.", b.Provider.Name))
	return b, nil
}

// CompleteJob finishes an in-progress booking, stamps the invoice due date
// and schedules the due-date reminder.
func (s *DefaultBookingService) CompleteJob(ctx context.Context, bookingID, providerID string) (*models.Booking, error) {
	b, err := s.loadForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, models.StatusCompleted) {
		return nil, ErrInvalidTransition
	}

	due := time.Now().Add(InvoiceDueAfter)
	b.Status = models.StatusCompleted
	b.DueDate = &due
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, b, "booking_completed", "Job completed",
		fmt.Sprintf("%s marked the job complete. Payment of KES %.2f is due by %s.", b.Provider.Name, b.JobValue(), due.Format("Mon, 02 Jan")))
	s.scheduleInvoiceReminder(b.ID, due)
	return b, nil
}

// --- shared plumbing ---

func (s *DefaultBookingService) load(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *DefaultBookingService) loadFor(ctx context.Context, bookingID, callerID string) (*models.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if callerID != b.Customer.ID && callerID != b.Provider.ID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *DefaultBookingService) loadForCustomer(ctx context.Context, bookingID, customerID string) (*models.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Customer.ID != customerID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *DefaultBookingService) loadForProvider(ctx context.Context, bookingID, providerID string) (*models.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Provider.ID != providerID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *DefaultBookingService) notifyCustomer(ctx context.Context, b *models.Booking, notifType, title, body string) {
	if s.Notifier == nil {
		return
	}
	data := map[string]string{"bookingId": b.ID, "status": string(b.Status)}
	if err := s.Notifier.NotifyUser(ctx, b.Customer.ID, notifType, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify customer", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) notifyProvider(ctx context.Context, b *models.Booking, notifType, title, body string) {
	if s.Notifier == nil {
		return
	}
	data := map[string]string{"bookingId": b.ID, "status": string(b.Status)}
	if err := s.Notifier.NotifyProvider(ctx, b.Provider.ID, notifType, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify provider", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) enqueueAutoDecision(bookingID string) {
	if s.TaskQueue == nil {
		return
	}
	task, opts, err := tasks.NewAIDecideTask(bookingID)
	if err == nil {
		_, err = s.TaskQueue.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to enqueue auto-decision task", zap.String("bookingId", bookingID), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleInvoiceReminder(bookingID string, due time.Time) {
	if s.TaskQueue == nil {
		return
	}
	task, opts, err := tasks.NewInvoiceDueTask(bookingID, due)
	if err == nil {
		_, err = s.TaskQueue.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to schedule invoice reminder", zap.String("bookingId", bookingID), zap.Error(err))
	}
}
