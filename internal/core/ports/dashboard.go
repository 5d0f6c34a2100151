package ports

import (
	"context"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

// TaskMetricsRepository is the read-only slice of the task store the
// metrics engine consumes. Day arguments are calendar dates in the
// engine's location; implementations match on the date part only.
type TaskMetricsRepository interface {
	// CompletedOn returns tasks with status DONE, updated_at on the
	// given calendar day and a non-null duration, joined with their
	// category and app/website names.
	CompletedOn(ctx context.Context, userID uint64, day time.Time) ([]domain.CompletedTask, error)
	// CountDuePending counts PENDING tasks due on the given day.
	CountDuePending(ctx context.Context, userID uint64, day time.Time) (int, error)
	// CountByStatus returns total, done, pending and overdue task
	// counts for the daily summary email.
	CountByStatus(ctx context.Context, userID uint64, today time.Time) (domain.TaskCounts, error)
	// ListOverdue returns PENDING tasks with a due date strictly
	// before today, across all users.
	ListOverdue(ctx context.Context, today time.Time) ([]domain.OverdueTask, error)
}

type DashboardService interface {
	Snapshot(ctx context.Context, userID uint64) (domain.DashboardSnapshot, error)
}

// SuggestionProvider hands back one productivity suggestion. It is an
// explicitly fallible external call: the dashboard degrades a single
// insight on error instead of failing the snapshot.
type SuggestionProvider interface {
	Suggest(ctx context.Context, userID uint64) (string, error)
}

// Mailer delivers best-effort mail; failures are logged, never
// propagated into request handling.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
