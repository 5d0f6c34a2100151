package domain

import "time"

type Notification struct {
	ID        uint64
	UserID    uint64
	Message   string
	IsRead    bool
	CreatedAt time.Time
	ReadAt    *time.Time
}
