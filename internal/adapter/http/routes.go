package http

import (
	"github.com/gin-gonic/gin"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/handlers"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/middleware"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/authtoken"
)

// Handlers bundles everything RegisterRoutes needs so the composition
// root wires the router in one call.
type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Task         *handlers.TaskHandler
	Catalog      *handlers.CatalogHandler
	Notification *handlers.NotificationHandler
	Dashboard    *handlers.DashboardHandler
}

func RegisterRoutes(r *gin.Engine, tokens *authtoken.Manager, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/register", h.Auth.Register)
		api.POST("/token", h.Auth.Login)
		api.POST("/token/refresh", h.Auth.Refresh)
		api.POST("/password-reset/request", h.Auth.RequestPasswordReset)
		api.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	}

	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(tokens))
	{
		auth.GET("/users/me", h.Auth.Profile)
		auth.PUT("/users/me", h.Auth.UpdateProfile)
		auth.PUT("/users/me/change-password", h.Auth.ChangePassword)

		auth.GET("/tasks", h.Task.ListTasks)
		auth.POST("/tasks", h.Task.CreateTask)
		auth.GET("/tasks/:id", h.Task.GetTask)
		auth.PATCH("/tasks/:id", h.Task.UpdateTask)
		auth.DELETE("/tasks/:id", h.Task.DeleteTask)
		auth.GET("/tasks/:id/subtasks", h.Task.ListSubtasks)
		auth.POST("/tasks/:id/subtasks", h.Task.CreateSubtask)
		auth.PATCH("/subtasks/:id", h.Task.UpdateSubtask)
		auth.DELETE("/subtasks/:id", h.Task.DeleteSubtask)

		auth.GET("/categories", h.Catalog.ListCategories)
		auth.POST("/categories", h.Catalog.CreateCategory)
		auth.PATCH("/categories/:id", h.Catalog.UpdateCategory)
		auth.DELETE("/categories/:id", h.Catalog.DeleteCategory)

		auth.GET("/app-websites", h.Catalog.ListAppWebsites)
		auth.POST("/app-websites", h.Catalog.CreateAppWebsite)
		auth.PATCH("/app-websites/:id", h.Catalog.UpdateAppWebsite)
		auth.DELETE("/app-websites/:id", h.Catalog.DeleteAppWebsite)

		auth.GET("/projects", h.Catalog.ListProjects)
		auth.POST("/projects", h.Catalog.CreateProject)
		auth.PATCH("/projects/:id", h.Catalog.UpdateProject)
		auth.DELETE("/projects/:id", h.Catalog.DeleteProject)

		auth.GET("/notifications", h.Notification.ListNotifications)
		auth.PATCH("/notifications/:id/read", h.Notification.MarkNotificationRead)

		auth.GET("/dashboard-metrics", h.Dashboard.GetDashboardMetrics)
		auth.GET("/ai-suggestion", h.Dashboard.GetSuggestion)
	}
}
