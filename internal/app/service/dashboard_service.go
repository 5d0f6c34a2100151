package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

// Insight wording and icon tags, matched by the frontend.
const (
	insightSuggestionFallback = "AI is unable to generate a suggestion at this time."
	insightTrendIncrease      = "You're building momentum! Keep up the great work."
	insightTrendDecrease      = "A slightly slower day, consider a short break to recharge."
	insightTrendNeutral       = "Your productivity is consistent today. Great job!"
	insightNoWorkYet          = "Complete a task to get your first insight!"
	insightDueTemplate        = "You have %d tasks due today. Prioritize wisely!"

	iconLightbulb    = "Lightbulb"
	iconTrendingUp   = "TrendingUp"
	iconTrendingDown = "TrendingDown"
	iconCheckCircle  = "CheckCircle"
	iconInfo         = "Info"
	iconClock        = "Clock"
)

// DashboardConfig carries the deployment tunables of the metrics
// engine. Values come from configuration, never from user data, so
// the percent-of-target division is always well defined.
type DashboardConfig struct {
	DailyTargetMinutes int
	ProductiveAppsTop  int
	Location           *time.Location
}

// DashboardService computes the per-user dashboard snapshot. It is a
// stateless read path: every call recomputes from the store, nothing
// is cached or written.
type DashboardService struct {
	metrics    ports.TaskMetricsRepository
	categories ports.CategoryRepository
	suggester  ports.SuggestionProvider
	cfg        DashboardConfig
	now        func() time.Time
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(
	metrics ports.TaskMetricsRepository,
	categories ports.CategoryRepository,
	suggester ports.SuggestionProvider,
	cfg DashboardConfig,
) *DashboardService {
	if cfg.DailyTargetMinutes <= 0 {
		cfg.DailyTargetMinutes = 480
	}
	if cfg.ProductiveAppsTop <= 0 {
		cfg.ProductiveAppsTop = 5
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &DashboardService{
		metrics:    metrics,
		categories: categories,
		suggester:  suggester,
		cfg:        cfg,
		now:        time.Now,
	}
}

// WithClock overrides the snapshot reference time, for tests.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) Snapshot(ctx context.Context, userID uint64) (domain.DashboardSnapshot, error) {
	today := s.now().In(s.cfg.Location)
	yesterday := today.AddDate(0, 0, -1)

	// Work and Focus are resolved by exact, case-sensitive name. An
	// absent category simply contributes zero; it is not an error.
	hasWork, err := s.categoryExists(ctx, userID, domain.WorkCategoryName)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}
	hasFocus, err := s.categoryExists(ctx, userID, domain.FocusCategoryName)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}

	completedToday, err := s.metrics.CompletedOn(ctx, userID, today)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}
	completedYesterday, err := s.metrics.CompletedOn(ctx, userID, yesterday)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}

	// A task references at most one category, so the two buckets
	// never overlap and summing them is a safe union.
	workMinutesToday := s.workMinutes(completedToday, hasWork, hasFocus)
	workMinutesYesterday := s.workMinutes(completedYesterday, hasWork, hasFocus)

	trend := domain.TrendNeutral
	switch {
	case workMinutesToday > workMinutesYesterday:
		trend = domain.TrendIncrease
	case workMinutesToday < workMinutesYesterday:
		trend = domain.TrendDecrease
	}

	focusMinutesToday := 0
	if hasFocus {
		focusMinutesToday = minutesInCategory(completedToday, domain.FocusCategoryName)
	}

	focusPercent := 0
	if workMinutesToday > 0 {
		focusPercent = roundPercent(focusMinutesToday, workMinutesToday)
	}

	dueTodayCount, err := s.metrics.CountDuePending(ctx, userID, today)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}

	return domain.DashboardSnapshot{
		WorkHours: domain.WorkHours{
			Hours:   workMinutesToday / 60,
			Minutes: workMinutesToday % 60,
		},
		WorkHoursTrend:  trend,
		PercentOfTarget: s.percentOfTarget(workMinutesToday),
		FocusPercent:    focusPercent,
		DailySummary:    dailySummary(completedToday),
		ProductiveApps:  s.productiveApps(completedToday),
		Insights:        s.insights(ctx, userID, workMinutesToday, trend, dueTodayCount),
		TasksDueToday:   dueTodayCount,
	}, nil
}

func (s *DashboardService) categoryExists(ctx context.Context, userID uint64, name string) (bool, error) {
	_, err := s.categories.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *DashboardService) workMinutes(tasks []domain.CompletedTask, hasWork, hasFocus bool) int {
	total := 0
	if hasWork {
		total += minutesInCategory(tasks, domain.WorkCategoryName)
	}
	if hasFocus {
		total += minutesInCategory(tasks, domain.FocusCategoryName)
	}
	return total
}

func minutesInCategory(tasks []domain.CompletedTask, name string) int {
	total := 0
	for _, task := range tasks {
		if task.CategoryName != nil && *task.CategoryName == name {
			total += task.DurationMinutes
		}
	}
	return total
}

// percentOfTarget is clamped to [0, 100]: finishing more than the
// daily target still reads as 100.
func (s *DashboardService) percentOfTarget(workMinutes int) int {
	percent := roundPercent(workMinutes, s.cfg.DailyTargetMinutes)
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func dailySummary(tasks []domain.CompletedTask) domain.DailySummary {
	byCategory := make(map[string]int)
	for _, task := range tasks {
		if task.CategoryName == nil {
			continue
		}
		byCategory[*task.CategoryName] += task.DurationMinutes
	}

	labels := make([]string, 0, len(byCategory))
	for name := range byCategory {
		labels = append(labels, name)
	}
	sort.Strings(labels)

	data := make([]int, 0, len(labels))
	for _, name := range labels {
		data = append(data, byCategory[name])
	}

	return domain.DailySummary{Labels: labels, Data: data}
}

func (s *DashboardService) productiveApps(tasks []domain.CompletedTask) []domain.ProductiveApp {
	byApp := make(map[string]int)
	for _, task := range tasks {
		if task.AppWebsiteName == nil {
			continue
		}
		byApp[*task.AppWebsiteName] += task.DurationMinutes
	}

	apps := make([]domain.ProductiveApp, 0, len(byApp))
	for name, minutes := range byApp {
		apps = append(apps, domain.ProductiveApp{Name: name, Minutes: minutes})
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].Minutes != apps[j].Minutes {
			return apps[i].Minutes > apps[j].Minutes
		}
		return apps[i].Name < apps[j].Name
	})

	if len(apps) > s.cfg.ProductiveAppsTop {
		apps = apps[:s.cfg.ProductiveAppsTop]
	}
	return apps
}

// insights assembles the ordered insight list: the suggestion entry
// (always present, degraded on provider failure), then either the
// trend commentary or the no-work entry, then the due-count entry
// when anything is due.
func (s *DashboardService) insights(
	ctx context.Context,
	userID uint64,
	workMinutesToday int,
	trend domain.WorkTrend,
	dueTodayCount int,
) []domain.Insight {
	insights := make([]domain.Insight, 0, 3)

	suggestion, err := s.suggester.Suggest(ctx, userID)
	if err != nil {
		zap.L().Error("suggestion provider failed", zap.Uint64("user_id", userID), zap.Error(err))
		insights = append(insights, domain.Insight{Icon: iconLightbulb, Text: insightSuggestionFallback})
	} else {
		insights = append(insights, domain.Insight{Icon: iconLightbulb, Text: "AI suggests: " + suggestion})
	}

	if workMinutesToday > 0 {
		switch trend {
		case domain.TrendIncrease:
			insights = append(insights, domain.Insight{Icon: iconTrendingUp, Text: insightTrendIncrease})
		case domain.TrendDecrease:
			insights = append(insights, domain.Insight{Icon: iconTrendingDown, Text: insightTrendDecrease})
		default:
			insights = append(insights, domain.Insight{Icon: iconCheckCircle, Text: insightTrendNeutral})
		}
	} else {
		insights = append(insights, domain.Insight{Icon: iconInfo, Text: insightNoWorkYet})
	}

	if dueTodayCount > 0 {
		insights = append(insights, domain.Insight{
			Icon: iconClock,
			Text: fmt.Sprintf(insightDueTemplate, dueTodayCount),
		})
	}

	return insights
}
