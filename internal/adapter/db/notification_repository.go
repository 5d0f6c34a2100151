package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        uint64       `db:"id"`
	UserID    uint64       `db:"user_id"`
	Message   string       `db:"message"`
	IsRead    bool         `db:"is_read"`
	CreatedAt time.Time    `db:"created_at"`
	ReadAt    sql.NullTime `db:"read_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, userID uint64, message string) (domain.Notification, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (user_id, message) VALUES (?, ?);", userID, message)
	if err != nil {
		return domain.Notification{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Notification{}, err
	}

	return r.getByID(ctx, userID, uint64(id))
}

func (r *NotificationRepository) List(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	var rows []notificationRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT id, user_id, message, is_read, created_at, read_at
FROM notifications
WHERE user_id = ?
ORDER BY created_at DESC, id DESC;`, userID)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRow(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID uint64) (domain.Notification, error) {
	// read_at is only stamped on the first transition to read.
	_, err := r.db.ExecContext(ctx, `
UPDATE notifications
SET is_read = 1, read_at = NOW()
WHERE id = ? AND user_id = ? AND is_read = 0;`, notificationID, userID)
	if err != nil {
		return domain.Notification{}, err
	}

	return r.getByID(ctx, userID, notificationID)
}

func (r *NotificationRepository) getByID(ctx context.Context, userID, notificationID uint64) (domain.Notification, error) {
	var row notificationRow
	err := r.db.GetContext(ctx, &row, `
SELECT id, user_id, message, is_read, created_at, read_at
FROM notifications
WHERE id = ? AND user_id = ?;`, notificationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}

	return mapNotificationRow(row), nil
}

func mapNotificationRow(row notificationRow) domain.Notification {
	notification := domain.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Message:   row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}
	if row.ReadAt.Valid {
		value := row.ReadAt.Time
		notification.ReadAt = &value
	}
	return notification
}
