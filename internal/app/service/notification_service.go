package service

import (
	"context"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

type NotificationService struct {
	notificationRepository ports.NotificationRepository
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(notificationRepository ports.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepository}
}

func (s *NotificationService) Notify(ctx context.Context, userID uint64, message string) (domain.Notification, error) {
	return s.notificationRepository.Create(ctx, userID, message)
}

func (s *NotificationService) List(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	return s.notificationRepository.List(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error) {
	return s.notificationRepository.MarkRead(ctx, userID, notificationID)
}
