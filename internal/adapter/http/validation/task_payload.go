package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.PriorityLow
	if req.Priority != nil {
		priority = *req.Priority
	}

	recurrence := domain.RecurrenceNone
	if req.RecurrencePattern != nil {
		recurrence = domain.RecurrencePattern(*req.RecurrencePattern)
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	recurrenceEnd, err := parseOptionalDate(req.RecurrenceEndDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:             title,
		Description:       req.Description,
		DueDate:           dueDate,
		Status:            status,
		Priority:          priority,
		RecurrencePattern: recurrence,
		RecurrenceEndDate: recurrenceEnd,
		DurationMinutes:   req.DurationMinutes,
		CategoryID:        req.CategoryID,
		AppWebsiteID:      req.AppWebsiteID,
		ProjectID:         req.ProjectID,
	}, nil
}

// BuildUpdateTaskInput distinguishes "field absent" from
// "field set to null" by consulting the raw JSON object: a present
// null clears the column, an absent field leaves it alone.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var recurrence *domain.RecurrencePattern
	if hasJSONField(raw, "recurrence_pattern") && req.RecurrencePattern == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.RecurrencePattern != nil {
		value := domain.RecurrencePattern(*req.RecurrencePattern)
		recurrence = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, dueDateSet, err := optionalDateField(raw, "due_date", req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	recurrenceEnd, recurrenceEndSet, err := optionalDateField(raw, "recurrence_end_date", req.RecurrenceEndDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	durationSet := hasJSONField(raw, "duration_minutes")
	if durationSet && !isJSONNull(raw["duration_minutes"]) && req.DurationMinutes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	categoryIDSet := hasJSONField(raw, "category_id")
	if categoryIDSet && !isJSONNull(raw["category_id"]) && req.CategoryID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	appWebsiteIDSet := hasJSONField(raw, "app_website_id")
	if appWebsiteIDSet && !isJSONNull(raw["app_website_id"]) && req.AppWebsiteID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	projectIDSet := hasJSONField(raw, "project_id")
	if projectIDSet && !isJSONNull(raw["project_id"]) && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:                title,
		Description:          req.Description,
		DescriptionSet:       descriptionSet,
		DueDate:              dueDate,
		DueDateSet:           dueDateSet,
		Status:               status,
		Priority:             req.Priority,
		RecurrencePattern:    recurrence,
		RecurrenceEndDate:    recurrenceEnd,
		RecurrenceEndDateSet: recurrenceEndSet,
		DurationMinutes:      req.DurationMinutes,
		DurationMinutesSet:   durationSet,
		CategoryID:           req.CategoryID,
		CategoryIDSet:        categoryIDSet,
		AppWebsiteID:         req.AppWebsiteID,
		AppWebsiteIDSet:      appWebsiteIDSet,
		ProjectID:            req.ProjectID,
		ProjectIDSet:         projectIDSet,
	}, nil
}

func BuildUpdateSubtaskInput(req dto.UpdateSubtaskRequest, raw map[string]json.RawMessage) (domain.UpdateSubtaskInput, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "completed") {
		return domain.UpdateSubtaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateSubtaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateSubtaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateSubtaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateSubtaskInput{Title: title, Completed: req.Completed}, nil
}

func optionalDateField(raw map[string]json.RawMessage, field string, value *string) (*time.Time, bool, error) {
	set := hasJSONField(raw, field)
	if !set || isJSONNull(raw[field]) {
		return nil, set, nil
	}
	if value == nil {
		return nil, set, ErrInvalidTaskPayload
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, set, ErrInvalidTaskPayload
	}
	return &parsed, set, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{
		"title", "description", "due_date", "status", "priority",
		"recurrence_pattern", "recurrence_end_date", "duration_minutes",
		"category_id", "app_website_id", "project_id",
	} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
