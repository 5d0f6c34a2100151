package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

const completedOnQuery = `
SELECT
  t.duration_minutes,
  c.name AS category_name,
  aw.name AS app_website_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
LEFT JOIN app_websites aw ON aw.id = t.app_website_id
WHERE t.user_id = ?
  AND t.status = 'DONE'
  AND t.duration_minutes IS NOT NULL
  AND t.updated_at >= ?
  AND t.updated_at < ?;
`

const countDuePendingQuery = `
SELECT COUNT(*)
FROM tasks
WHERE user_id = ? AND status = 'PENDING' AND due_date = ?;
`

const countByStatusQuery = `
SELECT
  COUNT(*) AS total,
  COALESCE(SUM(status = 'DONE'), 0) AS done,
  COALESCE(SUM(status = 'PENDING'), 0) AS pending,
  COALESCE(SUM(status = 'PENDING' AND due_date IS NOT NULL AND due_date < ?), 0) AS overdue
FROM tasks
WHERE user_id = ?;
`

const listOverdueQuery = `
SELECT
  t.id AS task_id,
  t.title,
  t.due_date,
  u.id AS user_id,
  u.username,
  u.email
FROM tasks t
JOIN users u ON u.id = t.user_id
WHERE t.status = 'PENDING' AND t.due_date IS NOT NULL AND t.due_date < ?
ORDER BY t.due_date, t.id;
`

// MetricsRepository serves the read-only aggregation queries behind
// the dashboard and the background jobs. It never writes.
type MetricsRepository struct {
	db *sqlx.DB
}

type completedRow struct {
	DurationMinutes int            `db:"duration_minutes"`
	CategoryName    sql.NullString `db:"category_name"`
	AppWebsiteName  sql.NullString `db:"app_website_name"`
}

type taskCountsRow struct {
	Total   int `db:"total"`
	Done    int `db:"done"`
	Pending int `db:"pending"`
	Overdue int `db:"overdue"`
}

type overdueRow struct {
	TaskID   uint64    `db:"task_id"`
	Title    string    `db:"title"`
	DueDate  time.Time `db:"due_date"`
	UserID   uint64    `db:"user_id"`
	Username string    `db:"username"`
	Email    string    `db:"email"`
}

var _ ports.TaskMetricsRepository = (*MetricsRepository)(nil)

func NewMetricsRepository(db *sqlx.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

func (r *MetricsRepository) CompletedOn(ctx context.Context, userID uint64, day time.Time) ([]domain.CompletedTask, error) {
	start := startOfDay(day)
	end := start.AddDate(0, 0, 1)

	var rows []completedRow
	if err := r.db.SelectContext(ctx, &rows, completedOnQuery, userID, start, end); err != nil {
		return nil, err
	}

	tasks := make([]domain.CompletedTask, 0, len(rows))
	for _, row := range rows {
		task := domain.CompletedTask{DurationMinutes: row.DurationMinutes}
		if row.CategoryName.Valid {
			value := row.CategoryName.String
			task.CategoryName = &value
		}
		if row.AppWebsiteName.Valid {
			value := row.AppWebsiteName.String
			task.AppWebsiteName = &value
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *MetricsRepository) CountDuePending(ctx context.Context, userID uint64, day time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, countDuePendingQuery, userID, day.Format("2006-01-02"))
	return count, err
}

func (r *MetricsRepository) CountByStatus(ctx context.Context, userID uint64, today time.Time) (domain.TaskCounts, error) {
	var row taskCountsRow
	err := r.db.GetContext(ctx, &row, countByStatusQuery, today.Format("2006-01-02"), userID)
	if err != nil {
		return domain.TaskCounts{}, err
	}
	return domain.TaskCounts{
		Total:   row.Total,
		Done:    row.Done,
		Pending: row.Pending,
		Overdue: row.Overdue,
	}, nil
}

func (r *MetricsRepository) ListOverdue(ctx context.Context, today time.Time) ([]domain.OverdueTask, error) {
	var rows []overdueRow
	if err := r.db.SelectContext(ctx, &rows, listOverdueQuery, today.Format("2006-01-02")); err != nil {
		return nil, err
	}

	tasks := make([]domain.OverdueTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.OverdueTask{
			TaskID:    row.TaskID,
			Title:     row.Title,
			DueDate:   row.DueDate,
			UserID:    row.UserID,
			Username:  row.Username,
			UserEmail: row.Email,
		})
	}

	return tasks, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
