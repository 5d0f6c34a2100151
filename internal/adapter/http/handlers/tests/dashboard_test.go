package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/handlers"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/middleware"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/apierrors"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardServiceMock struct {
	mock.Mock
}

func (m *dashboardServiceMock) Snapshot(ctx context.Context, userID uint64) (domain.DashboardSnapshot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DashboardSnapshot), args.Error(1)
}

type suggestionProviderMock struct {
	mock.Mock
}

func (m *suggestionProviderMock) Suggest(ctx context.Context, userID uint64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func TestDashboardHandler_GetDashboardMetrics_Success(t *testing.T) {
	serviceMock := new(dashboardServiceMock)
	serviceMock.On("Snapshot", mock.Anything, uint64(7)).Return(
		domain.DashboardSnapshot{
			WorkHours:       domain.WorkHours{Hours: 1, Minutes: 30},
			WorkHoursTrend:  domain.TrendIncrease,
			PercentOfTarget: 19,
			FocusPercent:    33,
			DailySummary: domain.DailySummary{
				Labels: []string{"Focus", "Work"},
				Data:   []int{30, 60},
			},
			ProductiveApps: []domain.ProductiveApp{{Name: "VS Code", Minutes: 60}},
			Insights: []domain.Insight{
				{Icon: "Lightbulb", Text: "AI suggests: Take a short walk to refresh your mind."},
				{Icon: "TrendingUp", Text: "You're building momentum! Keep up the great work."},
			},
			TasksDueToday: 2,
		},
		nil,
	).Once()
	handler := handlers.NewDashboardHandler(serviceMock, new(suggestionProviderMock))

	router := gin.New()
	router.GET("/api/dashboard-metrics", middleware.LanguageMiddleware(), authenticatedAs(7), handler.GetDashboardMetrics)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-metrics", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.WorkHours.Hours)
	require.Equal(t, 30, got.WorkHours.Minutes)
	require.Equal(t, "increase", got.WorkHoursTrend)
	require.Equal(t, 19, got.PercentOfTarget)
	require.Equal(t, 33, got.FocusPercent)
	require.Equal(t, []string{"Focus", "Work"}, got.DailySummary.Labels)
	require.Equal(t, []int{30, 60}, got.DailySummary.Data)
	require.Len(t, got.ProductiveApps, 1)
	require.Equal(t, "VS Code", got.ProductiveApps[0].Name)
	require.Len(t, got.AiInsights, 2)
	require.Equal(t, "Lightbulb", got.AiInsights[0].Icon)
	require.Equal(t, 2, got.TasksDueToday)
	serviceMock.AssertExpectations(t)
}

func TestDashboardHandler_GetDashboardMetrics_EmptyDayHasArrays(t *testing.T) {
	serviceMock := new(dashboardServiceMock)
	serviceMock.On("Snapshot", mock.Anything, uint64(7)).Return(
		domain.DashboardSnapshot{
			WorkHoursTrend: domain.TrendNeutral,
			Insights: []domain.Insight{
				{Icon: "Lightbulb", Text: "AI suggests: Take a short walk to refresh your mind."},
				{Icon: "Info", Text: "Complete a task to get your first insight!"},
			},
		},
		nil,
	).Once()
	handler := handlers.NewDashboardHandler(serviceMock, new(suggestionProviderMock))

	router := gin.New()
	router.GET("/api/dashboard-metrics", middleware.LanguageMiddleware(), authenticatedAs(7), handler.GetDashboardMetrics)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-metrics", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Empty aggregations must serialize as [] rather than null.
	body := rec.Body.String()
	require.Contains(t, body, `"labels":[]`)
	require.Contains(t, body, `"data":[]`)
	require.Contains(t, body, `"productiveApps":[]`)
	serviceMock.AssertExpectations(t)
}

func TestDashboardHandler_GetDashboardMetrics_Error(t *testing.T) {
	serviceMock := new(dashboardServiceMock)
	serviceMock.On("Snapshot", mock.Anything, uint64(7)).Return(domain.DashboardSnapshot{}, errors.New("db is down")).Once()
	handler := handlers.NewDashboardHandler(serviceMock, new(suggestionProviderMock))

	router := gin.New()
	router.GET("/api/dashboard-metrics", middleware.LanguageMiddleware(), authenticatedAs(7), handler.GetDashboardMetrics)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-metrics", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not compute dashboard metrics.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestDashboardHandler_GetSuggestion_Success(t *testing.T) {
	providerMock := new(suggestionProviderMock)
	providerMock.On("Suggest", mock.Anything, uint64(7)).Return("Break large tasks into smaller, manageable subtasks.", nil).Once()
	handler := handlers.NewDashboardHandler(new(dashboardServiceMock), providerMock)

	router := gin.New()
	router.GET("/api/ai-suggestion", middleware.LanguageMiddleware(), authenticatedAs(7), handler.GetSuggestion)

	req := httptest.NewRequest(http.MethodGet, "/api/ai-suggestion", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Break large tasks into smaller, manageable subtasks.", got.Suggestion)
	providerMock.AssertExpectations(t)
}

func TestDashboardHandler_GetSuggestion_ProviderDown(t *testing.T) {
	providerMock := new(suggestionProviderMock)
	providerMock.On("Suggest", mock.Anything, uint64(7)).Return("", errors.New("circuit open")).Once()
	handler := handlers.NewDashboardHandler(new(dashboardServiceMock), providerMock)

	router := gin.New()
	router.GET("/api/ai-suggestion", middleware.LanguageMiddleware(), authenticatedAs(7), handler.GetSuggestion)

	req := httptest.NewRequest(http.MethodGet, "/api/ai-suggestion", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The suggestion service is unavailable.", got.ErrDetails.Message)
	providerMock.AssertExpectations(t)
}
