package handlers

import (
	"errors"
	"net/http"

	"hudumahub/models"
	booking "hudumahub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// statusForError maps service guard errors to HTTP responses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrOTPMismatch),
		errors.Is(err, booking.ErrInvalidRating),
		errors.Is(err, booking.ErrQuotationRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotCancellable),
		errors.Is(err, booking.ErrQuotationNotSent),
		errors.Is(err, booking.ErrQuotationResolved),
		errors.Is(err, booking.ErrQuotationNotAccepted),
		errors.Is(err, booking.ErrInvoiceNotDue),
		errors.Is(err, booking.ErrAlreadyPaid),
		errors.Is(err, booking.ErrAlreadyReviewed),
		errors.Is(err, booking.ErrReviewNotAllowed),
		errors.Is(err, booking.ErrAutoAcceptDisabled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("booking operation failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// RequestBookingHandler handles POST /api/bookings.
func (h *BookingHandler) RequestBookingHandler(c *gin.Context) {
	customerID := c.GetString("userID")

	var input booking.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := models.ParseBookingType(string(input.BookingType)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.BookingSvc.RequestBooking(c.Request.Context(), customerID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET on a single booking, for either party.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	callerID := callerIDFromContext(c)
	b, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListCustomerBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListCustomerBookingsHandler(c *gin.Context) {
	customerID := c.GetString("userID")
	bookings, err := h.BookingSvc.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProviderBookingsHandler handles GET /api/provider/bookings.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	bookings, err := h.BookingSvc.ListForProvider(c.Request.Context(), providerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// AcceptBookingHandler handles PUT /api/provider/bookings/:id/accept.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	b, err := h.BookingSvc.AcceptBooking(c.Request.Context(), c.Param("id"), providerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeclineBookingHandler handles PUT /api/provider/bookings/:id/decline.
func (h *BookingHandler) DeclineBookingHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	b, err := h.BookingSvc.DeclineBooking(c.Request.Context(), c.Param("id"), providerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler cancels a booking for either party.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	callerID := callerIDFromContext(c)
	b, err := h.BookingSvc.CancelBooking(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SendQuotationHandler handles PUT /api/provider/bookings/:id/quotation.
func (h *BookingHandler) SendQuotationHandler(c *gin.Context) {
	providerID := c.GetString("providerID")

	var req struct {
		Items []models.QuotationItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingSvc.SendQuotation(c.Request.Context(), c.Param("id"), providerID, req.Items)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AcceptQuotationHandler handles PUT /api/bookings/:id/quotation/accept.
func (h *BookingHandler) AcceptQuotationHandler(c *gin.Context) {
	customerID := c.GetString("userID")
	b, err := h.BookingSvc.AcceptQuotation(c.Request.Context(), c.Param("id"), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeclineQuotationHandler handles PUT /api/bookings/:id/quotation/decline.
func (h *BookingHandler) DeclineQuotationHandler(c *gin.Context) {
	customerID := c.GetString("userID")
	b, err := h.BookingSvc.DeclineQuotation(c.Request.Context(), c.Param("id"), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmAndPayHandler handles POST /api/bookings/:id/confirm. Creates the
// booking-fee payment intent and confirms the booking.
func (h *BookingHandler) ConfirmAndPayHandler(c *gin.Context) {
	customerID := c.GetString("userID")
	b, intent, err := h.BookingSvc.ConfirmAndPay(c.Request.Context(), c.Param("id"), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "payment": intent})
}

// StartJobHandler handles PUT /api/provider/bookings/:id/start. The provider
// supplies the customer's start code.
func (h *BookingHandler) StartJobHandler(c *gin.Context) {
	providerID := c.GetString("providerID")

	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingSvc.StartJob(c.Request.Context(), c.Param("id"), providerID, req.OTP)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteJobHandler handles PUT /api/provider/bookings/:id/complete.
func (h *BookingHandler) CompleteJobHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	b, err := h.BookingSvc.CompleteJob(c.Request.Context(), c.Param("id"), providerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PayInvoiceHandler handles POST /api/bookings/:id/pay-invoice.
func (h *BookingHandler) PayInvoiceHandler(c *gin.Context) {
	customerID := c.GetString("userID")
	b, intent, err := h.BookingSvc.PayInvoice(c.Request.Context(), c.Param("id"), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "payment": intent})
}

// AddReviewHandler handles POST /api/bookings/:id/review.
func (h *BookingHandler) AddReviewHandler(c *gin.Context) {
	customerID := c.GetString("userID")

	var req struct {
		Rating int    `json:"rating" binding:"required"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingSvc.AddReview(c.Request.Context(), c.Param("id"), customerID, req.Rating, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AppendChatMessageHandler appends a message to the booking chat, for either
// party.
func (h *BookingHandler) AppendChatMessageHandler(c *gin.Context) {
	senderID := callerIDFromContext(c)

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingSvc.AppendChatMessage(c.Request.Context(), c.Param("id"), senderID, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ProviderEarningsHandler handles GET /api/provider/bookings/earnings.
func (h *BookingHandler) ProviderEarningsHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	summary, err := h.BookingSvc.ProviderEarnings(c.Request.Context(), providerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// callerIDFromContext returns whichever identity the auth middleware set.
func callerIDFromContext(c *gin.Context) string {
	if id := c.GetString("userID"); id != "" {
		return id
	}
	return c.GetString("providerID")
}
