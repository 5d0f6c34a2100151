package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusDone    TaskStatus = "DONE"
)

type RecurrencePattern string

const (
	RecurrenceNone    RecurrencePattern = "NONE"
	RecurrenceDaily   RecurrencePattern = "DAILY"
	RecurrenceWeekly  RecurrencePattern = "WEEKLY"
	RecurrenceMonthly RecurrencePattern = "MONTHLY"
	RecurrenceYearly  RecurrencePattern = "YEARLY"
)

// Task priorities, lower value means more urgent.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

type Task struct {
	ID                uint64
	UserID            uint64
	Title             string
	Description       *string
	DueDate           *time.Time
	Status            TaskStatus
	Priority          int
	RecurrencePattern RecurrencePattern
	RecurrenceEndDate *time.Time
	// DurationMinutes is only meaningful once the task is DONE.
	DurationMinutes *int
	Category        *Category
	AppWebsite      *AppWebsite
	Project         *Project
	Subtasks        []Subtask
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Subtask struct {
	ID        uint64
	TaskID    uint64
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTaskInput struct {
	Title             string
	Description       *string
	DueDate           *time.Time
	Status            TaskStatus
	Priority          int
	RecurrencePattern RecurrencePattern
	RecurrenceEndDate *time.Time
	DurationMinutes   *int
	CategoryID        *uint64
	AppWebsiteID      *uint64
	ProjectID         *uint64
}

type UpdateTaskInput struct {
	Title                *string
	Description          *string
	DescriptionSet       bool
	DueDate              *time.Time
	DueDateSet           bool
	Status               *TaskStatus
	Priority             *int
	RecurrencePattern    *RecurrencePattern
	RecurrenceEndDate    *time.Time
	RecurrenceEndDateSet bool
	DurationMinutes      *int
	DurationMinutesSet   bool
	CategoryID           *uint64
	CategoryIDSet        bool
	AppWebsiteID         *uint64
	AppWebsiteIDSet      bool
	ProjectID            *uint64
	ProjectIDSet         bool
}

// TaskFilter narrows the owner-scoped task listing.
type TaskFilter struct {
	Search       string
	Status       *TaskStatus
	Priority     *int
	DueDateToday bool
}

type CreateSubtaskInput struct {
	Title string
}

type UpdateSubtaskInput struct {
	Title     *string
	Completed *bool
}
