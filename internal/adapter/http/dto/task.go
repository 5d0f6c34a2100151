package dto

type TaskItem struct {
	ID                uint64        `json:"id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description,omitempty"`
	DueDate           *string       `json:"due_date,omitempty"`
	Status            string        `json:"status"`
	Priority          int           `json:"priority"`
	RecurrencePattern string        `json:"recurrence_pattern"`
	RecurrenceEndDate *string       `json:"recurrence_end_date,omitempty"`
	DurationMinutes   *int          `json:"duration_minutes,omitempty"`
	Category          *CatalogItem  `json:"category,omitempty"`
	AppWebsite        *CatalogItem  `json:"app_website,omitempty"`
	Project           *CatalogItem  `json:"project,omitempty"`
	Subtasks          []SubtaskItem `json:"subtasks,omitempty"`
	CreatedAt         string        `json:"created_at"`
	UpdatedAt         string        `json:"updated_at"`
}

type SubtaskItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title             string  `json:"title" binding:"required,max=255"`
	Description       *string `json:"description" binding:"omitempty,max=65535"`
	DueDate           *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status            *string `json:"status" binding:"omitempty,oneof=PENDING DONE"`
	Priority          *int    `json:"priority" binding:"omitempty,gte=1,lte=3"`
	RecurrencePattern *string `json:"recurrence_pattern" binding:"omitempty,oneof=NONE DAILY WEEKLY MONTHLY YEARLY"`
	RecurrenceEndDate *string `json:"recurrence_end_date" binding:"omitempty,datetime=2006-01-02"`
	DurationMinutes   *int    `json:"duration_minutes" binding:"omitempty,gte=0"`
	CategoryID        *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	AppWebsiteID      *uint64 `json:"app_website_id" binding:"omitempty,gt=0"`
	ProjectID         *uint64 `json:"project_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title             *string `json:"title" binding:"omitempty,max=255"`
	Description       *string `json:"description" binding:"omitempty,max=65535"`
	DueDate           *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status            *string `json:"status" binding:"omitempty,oneof=PENDING DONE"`
	Priority          *int    `json:"priority" binding:"omitempty,gte=1,lte=3"`
	RecurrencePattern *string `json:"recurrence_pattern" binding:"omitempty,oneof=NONE DAILY WEEKLY MONTHLY YEARLY"`
	RecurrenceEndDate *string `json:"recurrence_end_date" binding:"omitempty,datetime=2006-01-02"`
	DurationMinutes   *int    `json:"duration_minutes" binding:"omitempty,gte=0"`
	CategoryID        *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	AppWebsiteID      *uint64 `json:"app_website_id" binding:"omitempty,gt=0"`
	ProjectID         *uint64 `json:"project_id" binding:"omitempty,gt=0"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type UpdateSubtaskRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Completed *bool   `json:"completed"`
}
