package service

import (
	"context"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	location       *time.Location
	now            func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, location *time.Location) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		location:       location,
		now:            time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, userID, input)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, userID, taskID)
}

func (s *TaskService) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, userID, filter, s.now().In(s.location))
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, userID, taskID, input)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint64) error {
	return s.taskRepository.Delete(ctx, userID, taskID)
}

func (s *TaskService) AddSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	return s.taskRepository.CreateSubtask(ctx, userID, taskID, input)
}

func (s *TaskService) ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error) {
	return s.taskRepository.ListSubtasks(ctx, userID, taskID)
}

func (s *TaskService) UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	return s.taskRepository.UpdateSubtask(ctx, userID, subtaskID, input)
}

func (s *TaskService) DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error {
	return s.taskRepository.DeleteSubtask(ctx, userID, subtaskID)
}
