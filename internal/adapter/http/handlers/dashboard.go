package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/mapper"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/middleware"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/apierrors"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
	suggester        ports.SuggestionProvider
}

func NewDashboardHandler(
	dashboardService ports.DashboardService,
	suggester ports.SuggestionProvider,
) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, suggester: suggester}
}

func (h *DashboardHandler) GetDashboardMetrics(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	snapshot, err := h.dashboardService.Snapshot(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to build dashboard snapshot", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardSnapshot(snapshot))
}

func (h *DashboardHandler) GetSuggestion(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	suggestion, err := h.suggester.Suggest(c.Request.Context(), userID)
	if err != nil {
		zap.L().Warn("suggestion provider unavailable", zap.Error(err))
		c.JSON(
			http.StatusServiceUnavailable,
			apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgFailSuggestion, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Suggestion{Suggestion: suggestion})
}
