package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

const taskSelectColumns = `
  t.id, t.user_id, t.title, t.description, t.due_date, t.status, t.priority,
  t.recurrence_pattern, t.recurrence_end_date, t.duration_minutes,
  t.category_id, t.app_website_id, t.project_id, t.created_at, t.updated_at,
  c.name AS category_name,
  aw.name AS app_website_name,
  p.name AS project_name
`

const taskSelectJoins = `
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
LEFT JOIN app_websites aw ON aw.id = t.app_website_id
LEFT JOIN projects p ON p.id = t.project_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                uint64         `db:"id"`
	UserID            uint64         `db:"user_id"`
	Title             string         `db:"title"`
	Description       sql.NullString `db:"description"`
	DueDate           sql.NullTime   `db:"due_date"`
	Status            string         `db:"status"`
	Priority          int            `db:"priority"`
	RecurrencePattern string         `db:"recurrence_pattern"`
	RecurrenceEndDate sql.NullTime   `db:"recurrence_end_date"`
	DurationMinutes   sql.NullInt64  `db:"duration_minutes"`
	CategoryID        sql.NullInt64  `db:"category_id"`
	AppWebsiteID      sql.NullInt64  `db:"app_website_id"`
	ProjectID         sql.NullInt64  `db:"project_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	CategoryName      sql.NullString `db:"category_name"`
	AppWebsiteName    sql.NullString `db:"app_website_name"`
	ProjectName       sql.NullString `db:"project_name"`
}

type subtaskRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	Title     string    `db:"title"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	const query = `
INSERT INTO tasks
  (user_id, title, description, due_date, status, priority,
   recurrence_pattern, recurrence_end_date, duration_minutes,
   category_id, app_website_id, project_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	result, err := r.db.ExecContext(ctx, query,
		userID,
		input.Title,
		input.Description,
		nullDate(input.DueDate),
		string(input.Status),
		input.Priority,
		string(input.RecurrencePattern),
		nullDate(input.RecurrenceEndDate),
		input.DurationMinutes,
		input.CategoryID,
		input.AppWebsiteID,
		input.ProjectID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Task{}, domain.ErrCategoryNotFound
		}
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, uint64(taskID))
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	query := "SELECT " + taskSelectColumns + taskSelectJoins + "WHERE t.id = ? AND t.user_id = ?;"

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task := mapTaskRowToDomainTask(row)

	subtasks, err := r.subtasksForTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.Subtasks = subtasks

	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID uint64, filter domain.TaskFilter, today time.Time) ([]domain.Task, error) {
	query := "SELECT " + taskSelectColumns + taskSelectJoins + "WHERE t.user_id = ?"
	args := []any{userID}

	if search := strings.TrimSpace(filter.Search); search != "" {
		query += " AND (t.title LIKE ? OR t.description LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Status != nil {
		query += " AND t.status = ?"
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		query += " AND t.priority = ?"
		args = append(args, *filter.Priority)
	}
	if filter.DueDateToday {
		query += " AND t.due_date = ?"
		args = append(args, today.Format("2006-01-02"))
	}

	query += " ORDER BY t.due_date IS NULL, t.due_date, t.priority, t.created_at DESC;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 10)
	args := make([]any, 0, 12)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, input.Description)
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullDate(input.DueDate))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *input.Priority)
	}
	if input.RecurrencePattern != nil {
		sets = append(sets, "recurrence_pattern = ?")
		args = append(args, string(*input.RecurrencePattern))
	}
	if input.RecurrenceEndDateSet {
		sets = append(sets, "recurrence_end_date = ?")
		args = append(args, nullDate(input.RecurrenceEndDate))
	}
	if input.DurationMinutesSet {
		sets = append(sets, "duration_minutes = ?")
		args = append(args, input.DurationMinutes)
	}
	if input.CategoryIDSet {
		sets = append(sets, "category_id = ?")
		args = append(args, input.CategoryID)
	}
	if input.AppWebsiteIDSet {
		sets = append(sets, "app_website_id = ?")
		args = append(args, input.AppWebsiteID)
	}
	if input.ProjectIDSet {
		sets = append(sets, "project_id = ?")
		args = append(args, input.ProjectID)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, userID, taskID)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ? AND user_id = ?;", strings.Join(sets, ", "))
	args = append(args, taskID, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Task{}, domain.ErrCategoryNotFound
		}
		return domain.Task{}, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		// Either the task does not exist or nothing changed; a fetch
		// disambiguates.
		if _, getErr := r.GetByID(ctx, userID, taskID); getErr != nil {
			return domain.Task{}, getErr
		}
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?;", taskID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CreateSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	if err := r.ensureTaskOwned(ctx, userID, taskID); err != nil {
		return domain.Subtask{}, err
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO subtasks (task_id, title) VALUES (?, ?);", taskID, input.Title)
	if err != nil {
		return domain.Subtask{}, err
	}

	subtaskID, err := result.LastInsertId()
	if err != nil {
		return domain.Subtask{}, err
	}

	var row subtaskRow
	if err := r.db.GetContext(ctx, &row,
		"SELECT id, task_id, title, completed, created_at, updated_at FROM subtasks WHERE id = ?;", subtaskID); err != nil {
		return domain.Subtask{}, err
	}

	return mapSubtaskRow(row), nil
}

func (r *TaskRepository) ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error) {
	if err := r.ensureTaskOwned(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return r.subtasksForTask(ctx, taskID)
}

func (r *TaskRepository) UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if input.Title != nil {
		sets = append(sets, "s.title = ?")
		args = append(args, *input.Title)
	}
	if input.Completed != nil {
		sets = append(sets, "s.completed = ?")
		args = append(args, *input.Completed)
	}

	if len(sets) > 0 {
		query := fmt.Sprintf(`
UPDATE subtasks s
JOIN tasks t ON t.id = s.task_id
SET %s
WHERE s.id = ? AND t.user_id = ?;`, strings.Join(sets, ", "))
		args = append(args, subtaskID, userID)

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Subtask{}, err
		}
	}

	var row subtaskRow
	err := r.db.GetContext(ctx, &row, `
SELECT s.id, s.task_id, s.title, s.completed, s.created_at, s.updated_at
FROM subtasks s
JOIN tasks t ON t.id = s.task_id
WHERE s.id = ? AND t.user_id = ?;`, subtaskID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subtask{}, domain.ErrSubtaskNotFound
		}
		return domain.Subtask{}, err
	}

	return mapSubtaskRow(row), nil
}

func (r *TaskRepository) DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error {
	result, err := r.db.ExecContext(ctx, `
DELETE s FROM subtasks s
JOIN tasks t ON t.id = s.task_id
WHERE s.id = ? AND t.user_id = ?;`, subtaskID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func (r *TaskRepository) ensureTaskOwned(ctx context.Context, userID, taskID uint64) error {
	var id uint64
	err := r.db.GetContext(ctx, &id, "SELECT id FROM tasks WHERE id = ? AND user_id = ?;", taskID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrTaskNotFound
	}
	return err
}

func (r *TaskRepository) subtasksForTask(ctx context.Context, taskID uint64) ([]domain.Subtask, error) {
	var rows []subtaskRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT id, task_id, title, completed, created_at, updated_at
FROM subtasks
WHERE task_id = ?
ORDER BY created_at, id;`, taskID)
	if err != nil {
		return nil, err
	}

	subtasks := make([]domain.Subtask, 0, len(rows))
	for _, row := range rows {
		subtasks = append(subtasks, mapSubtaskRow(row))
	}
	return subtasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:                row.ID,
		UserID:            row.UserID,
		Title:             row.Title,
		Status:            domain.TaskStatus(row.Status),
		Priority:          row.Priority,
		RecurrencePattern: domain.RecurrencePattern(row.RecurrencePattern),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.RecurrenceEndDate.Valid {
		value := row.RecurrenceEndDate.Time
		task.RecurrenceEndDate = &value
	}

	if row.DurationMinutes.Valid {
		value := int(row.DurationMinutes.Int64)
		task.DurationMinutes = &value
	}

	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:     uint64(row.CategoryID.Int64),
			UserID: row.UserID,
			Name:   row.CategoryName.String,
		}
	}

	if row.AppWebsiteID.Valid && row.AppWebsiteName.Valid {
		task.AppWebsite = &domain.AppWebsite{
			ID:     uint64(row.AppWebsiteID.Int64),
			UserID: row.UserID,
			Name:   row.AppWebsiteName.String,
		}
	}

	if row.ProjectID.Valid && row.ProjectName.Valid {
		task.Project = &domain.Project{
			ID:     uint64(row.ProjectID.Int64),
			UserID: row.UserID,
			Name:   row.ProjectName.String,
		}
	}

	return task
}

func mapSubtaskRow(row subtaskRow) domain.Subtask {
	return domain.Subtask{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
