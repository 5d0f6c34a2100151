package domain

import "time"

// TaskCounts feeds the daily productivity summary email.
type TaskCounts struct {
	Total   int
	Done    int
	Pending int
	Overdue int
}

// OverdueTask is a PENDING task past its due date, with enough owner
// detail to send a reminder.
type OverdueTask struct {
	TaskID    uint64
	Title     string
	DueDate   time.Time
	UserID    uint64
	Username  string
	UserEmail string
}
