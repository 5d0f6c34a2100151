package ports

import (
	"context"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	List(ctx context.Context, userID uint64, filter domain.TaskFilter, today time.Time) ([]domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error

	CreateSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error)
	UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error
}

type TaskService interface {
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error

	AddSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error)
	UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error
}
