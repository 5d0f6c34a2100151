package mapper

import (
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                task.ID,
		Title:             task.Title,
		Status:            string(task.Status),
		Priority:          task.Priority,
		RecurrencePattern: string(task.RecurrencePattern),
		CreatedAt:         task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.RecurrenceEndDate != nil {
		value := task.RecurrenceEndDate.Format("2006-01-02")
		item.RecurrenceEndDate = &value
	}

	if task.DurationMinutes != nil {
		value := *task.DurationMinutes
		item.DurationMinutes = &value
	}

	if task.Category != nil {
		item.Category = &dto.CatalogItem{ID: task.Category.ID, Name: task.Category.Name}
	}

	if task.AppWebsite != nil {
		item.AppWebsite = &dto.CatalogItem{ID: task.AppWebsite.ID, Name: task.AppWebsite.Name}
	}

	if task.Project != nil {
		item.Project = &dto.CatalogItem{ID: task.Project.ID, Name: task.Project.Name}
	}

	if len(task.Subtasks) > 0 {
		item.Subtasks = ToSubtaskItems(task.Subtasks)
	}

	return item
}

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubtaskItem(subtask))
	}
	return items
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	return dto.SubtaskItem{
		ID:        subtask.ID,
		TaskID:    subtask.TaskID,
		Title:     subtask.Title,
		Completed: subtask.Completed,
		CreatedAt: subtask.CreatedAt.Format(time.RFC3339),
		UpdatedAt: subtask.UpdatedAt.Format(time.RFC3339),
	}
}
