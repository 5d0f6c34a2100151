package mapper

import (
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
)

func ToDashboardSnapshot(snapshot domain.DashboardSnapshot) dto.DashboardSnapshot {
	apps := make([]dto.ProductiveApp, 0, len(snapshot.ProductiveApps))
	for _, app := range snapshot.ProductiveApps {
		apps = append(apps, dto.ProductiveApp{Name: app.Name, Minutes: app.Minutes})
	}

	insights := make([]dto.Insight, 0, len(snapshot.Insights))
	for _, insight := range snapshot.Insights {
		insights = append(insights, dto.Insight{Icon: insight.Icon, Text: insight.Text})
	}

	labels := snapshot.DailySummary.Labels
	if labels == nil {
		labels = []string{}
	}
	data := snapshot.DailySummary.Data
	if data == nil {
		data = []int{}
	}

	return dto.DashboardSnapshot{
		WorkHours: dto.WorkHours{
			Hours:   snapshot.WorkHours.Hours,
			Minutes: snapshot.WorkHours.Minutes,
		},
		WorkHoursTrend:  string(snapshot.WorkHoursTrend),
		PercentOfTarget: snapshot.PercentOfTarget,
		FocusPercent:    snapshot.FocusPercent,
		DailySummary:    dto.DailySummary{Labels: labels, Data: data},
		ProductiveApps:  apps,
		AiInsights:      insights,
		TasksDueToday:   snapshot.TasksDueToday,
	}
}

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	item := dto.NotificationItem{
		ID:        notification.ID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
	if notification.ReadAt != nil {
		value := notification.ReadAt.Format(time.RFC3339)
		item.ReadAt = &value
	}
	return item
}

func ToUserProfile(user domain.User) dto.UserProfile {
	return dto.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
