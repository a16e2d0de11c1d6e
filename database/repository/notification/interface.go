package notificationRepo

import (
	"context"

	"hudumahub/models"
)

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(ctx context.Context, n *models.Notification) error
	// ListByRecipient retrieves notifications for one recipient, newest first.
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id, recipientID string) error
}
