package ports

import (
	"context"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, userID uint64, message string) (domain.Notification, error)
	List(ctx context.Context, userID uint64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID uint64, message string) (domain.Notification, error)
	List(ctx context.Context, userID uint64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error)
}
