package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/handlers"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	api := r.Group("", middleware.LanguageMiddleware())
	{
		api.GET("/", handlers.Root)
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/analytics", analyticsHandler.Summary)
		api.GET("/analytics/status-count", analyticsHandler.StatusCount)
	}
}
