package handlers

import (
	"net/http"

	"hudumahub/services/notification"
	"hudumahub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification inbox endpoints.
type NotificationHandler struct {
	Svc notification.NotificationService
}

// ListNotificationsHandler lists the caller's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	recipientID := callerIDFromContext(c)

	notifications, err := h.Svc.ListForRecipient(c.Request.Context(), recipientID)
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler flags one of the caller's notifications as read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	logger := utils.GetLogger()
	recipientID := callerIDFromContext(c)

	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id"), recipientID); err != nil {
		logger.Error("Failed to mark notification read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
