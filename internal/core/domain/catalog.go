package domain

import "time"

// Category groups tasks by area. Two names carry special meaning for
// the dashboard: tasks in "Work" and "Focus" count towards the daily
// work total. A task references at most one category, which is what
// makes summing the two buckets safe.
type Category struct {
	ID          uint64
	UserID      uint64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppWebsite is an application or website a task was spent in.
type AppWebsite struct {
	ID          uint64
	UserID      uint64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Project struct {
	ID          uint64
	UserID      uint64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateCatalogItemInput struct {
	Name        string
	Description *string
}

type UpdateCatalogItemInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
}
