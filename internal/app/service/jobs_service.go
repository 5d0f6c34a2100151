package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

// JobsService runs the scheduled side effects: the daily productivity
// summary email and the overdue-task reminder sweep. Both are
// best-effort; a failed email or notification is logged and skipped,
// never retried and never allowed to block request handling.
type JobsService struct {
	userRepository ports.UserRepository
	metrics        ports.TaskMetricsRepository
	notifications  ports.NotificationService
	mailer         ports.Mailer
	location       *time.Location
	now            func() time.Time
}

func NewJobsService(
	userRepository ports.UserRepository,
	metrics ports.TaskMetricsRepository,
	notifications ports.NotificationService,
	mailer ports.Mailer,
	location *time.Location,
) *JobsService {
	return &JobsService{
		userRepository: userRepository,
		metrics:        metrics,
		notifications:  notifications,
		mailer:         mailer,
		location:       location,
		now:            time.Now,
	}
}

// SendDailySummaries emails every user their task totals for the day.
func (s *JobsService) SendDailySummaries(ctx context.Context) {
	today := s.now().In(s.location)

	users, err := s.userRepository.ListAll(ctx)
	if err != nil {
		zap.L().Error("daily summary: failed to list users", zap.Error(err))
		return
	}

	for _, user := range users {
		counts, err := s.metrics.CountByStatus(ctx, user.ID, today)
		if err != nil {
			zap.L().Error("daily summary: failed to count tasks",
				zap.Uint64("user_id", user.ID), zap.Error(err))
			continue
		}

		if user.Email == "" {
			continue
		}

		body := fmt.Sprintf(
			"Hi %s,\n\n"+
				"Here's your task summary for today:\n"+
				"- Total tasks: %d\n"+
				"- Completed: %d\n"+
				"- Pending: %d\n"+
				"- Overdue: %d\n\n"+
				"Keep up the great work!\n\n"+
				"— Your AI Productivity Dashboard",
			user.Username, counts.Total, counts.Done, counts.Pending, counts.Overdue)

		if err := s.mailer.Send(ctx, user.Email, "Your Daily Productivity Summary", body); err != nil {
			zap.L().Warn("daily summary: failed to send email",
				zap.Uint64("user_id", user.ID), zap.Error(err))
		}
	}
}

// SendOverdueReminders emails and notifies owners of every PENDING
// task past its due date.
func (s *JobsService) SendOverdueReminders(ctx context.Context) {
	today := s.now().In(s.location)

	overdue, err := s.metrics.ListOverdue(ctx, today)
	if err != nil {
		zap.L().Error("overdue reminders: failed to list overdue tasks", zap.Error(err))
		return
	}

	for _, task := range overdue {
		dueDate := task.DueDate.Format("2006-01-02")

		if task.UserEmail != "" {
			body := fmt.Sprintf(
				"Hi %s,\n\n"+
					"Your task '%s' was due on %s and is now overdue. "+
					"Please take action to complete it.\n\n"+
					"Keep up the good work!\n"+
					"— Your Productivity App",
				task.Username, task.Title, dueDate)

			if err := s.mailer.Send(ctx, task.UserEmail, "Overdue Task Reminder: "+task.Title, body); err != nil {
				zap.L().Warn("overdue reminders: failed to send email",
					zap.Uint64("task_id", task.TaskID), zap.Error(err))
			}
		}

		message := fmt.Sprintf("Your task '%s' is overdue since %s. Please take action.", task.Title, dueDate)
		if _, err := s.notifications.Notify(ctx, task.UserID, message); err != nil {
			zap.L().Warn("overdue reminders: failed to create notification",
				zap.Uint64("task_id", task.TaskID), zap.Error(err))
		}
	}
}
