package service

import (
	"context"

	"go-social-network/internal/model"
)

type NotificationStore interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
	ListByUser(ctx context.Context, userID int64, skip int, limit int) ([]model.Notification, error)
}

type NotificationService struct {
	notifications NotificationStore
}

func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) CreateNotification(ctx context.Context, userID int64, message string) (model.Notification, error) {
	return s.notifications.Create(ctx, model.Notification{UserID: userID, Message: message})
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID int64, skip int, limit int) ([]model.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, skip, limit)
}
