package notification

import (
	"context"
	"time"

	notificationRepo "hudumahub/database/repository/notification"
	providerRepo "hudumahub/database/repository/provider"
	userRepo "hudumahub/database/repository/user"
	"hudumahub/models"
	"hudumahub/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService persists notifications and attempts FCM delivery.
// Persistence is authoritative; a failed push never fails the caller.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, notifType, title, body string, data map[string]string) error
	NotifyProvider(ctx context.Context, providerID, notifType, title, body string, data map[string]string) error
	ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
}

// NotifyUser records a notification for a customer and pushes it if possible.
func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, notifType, title, body string, data map[string]string) error {
	if err := s.persist(ctx, userID, models.RoleUser, notifType, title, body, data); err != nil {
		return err
	}

	u, err := s.Users.GetByID(userID)
	if err != nil || u.FCMToken == "" {
		return nil
	}
	s.push(ctx, u.FCMToken, models.RoleUser, title, body, data)
	return nil
}

// NotifyProvider records a notification for a provider and pushes it if possible.
func (s *DefaultNotificationService) NotifyProvider(ctx context.Context, providerID, notifType, title, body string, data map[string]string) error {
	if err := s.persist(ctx, providerID, models.RoleProvider, notifType, title, body, data); err != nil {
		return err
	}

	p, err := s.Providers.GetByID(providerID)
	if err != nil || p.FCMToken == "" {
		return nil
	}
	s.push(ctx, p.FCMToken, models.RoleProvider, title, body, data)
	return nil
}

// ListForRecipient retrieves notifications for one recipient, newest first.
func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, recipientID)
}

// MarkRead flags a notification as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.Repo.MarkRead(ctx, id, recipientID)
}

func (s *DefaultNotificationService) persist(ctx context.Context, recipientID, role, notifType, title, body string, data map[string]string) error {
	n := &models.Notification{
		ID:            uuid.New().String(),
		RecipientID:   recipientID,
		RecipientRole: role,
		Type:          notifType,
		Title:         title,
		Body:          body,
		Data:          data,
		Read:          false,
		CreatedAt:     time.Now(),
	}
	return s.Repo.Create(ctx, n)
}

func (s *DefaultNotificationService) push(ctx context.Context, token, role, title, body string, data map[string]string) {
	if utils.FCMClient == nil {
		return
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("failed to send FCM message", zap.Error(err))
	}
}
