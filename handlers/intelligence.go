package handlers

import (
	"net/http"

	booking "hudumahub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler exposes endpoints for the AI decision oracle.
type AIHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// DecideBookingHandler handles POST /api/ai/decide/:id. Lets a provider run
// the oracle on demand against one of their pending quote requests.
func (h *AIHandler) DecideBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	providerID := c.GetString("providerID")

	// Visibility check: only a party to the booking may trigger a decision.
	if _, err := h.BookingSvc.GetBooking(c.Request.Context(), bookingID, providerID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	decision, err := h.BookingSvc.DecideBooking(c.Request.Context(), bookingID)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("AI decision failed", zap.String("bookingID", bookingID), zap.Error(err))
			c.JSON(status, gin.H{"error": "decision failed"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, decision)
}
