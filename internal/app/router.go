package app

import (
	"kpi_tracker_backend/docs"
	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/middleware"
	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Public routes. TryAuth attaches claims when present so visibility and
	// the settings view can vary by viewer.
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware(cfg))
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/forgot-password", c.auth.ForgotPassword)
		public.POST("/auth/reset-password", c.auth.ResetPassword)

		public.GET("/home", c.home.Dashboard)
		public.GET("/settings", c.settings.Get)
		public.GET("/goals/nav", c.goal.Nav)
		public.GET("/goals/:id", c.goal.Detail)
		public.GET("/goals/:id/monthly", c.goal.Monthly)
		public.GET("/goals/:id/submetrics", c.goal.SubMetrics)
		public.GET("/worklogs/latest", c.workLog.Latest)
	}

	// Routes for any signed-in user.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.PUT("/users/me", c.user.UpdateProfile)

		authGroup.POST("/worklogs", c.workLog.Create)
		authGroup.GET("/worklogs/:id", c.workLog.Get)
		authGroup.PUT("/worklogs/:id", c.workLog.Update)
		authGroup.DELETE("/worklogs/:id", c.workLog.Delete)

		authGroup.POST("/uploads", c.upload.Upload)
		authGroup.GET("/reports/me", c.report.MyReport)
	}

	// Admin-only routes.
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin), middleware.ActivityMiddleware(repos.user))
	{
		admin.GET("/users", c.user.List)
		admin.GET("/users/pending", c.user.ListPending)
		admin.POST("/users/:id/approve", c.user.Approve)
		admin.POST("/users/:id/reject", c.user.Reject)
		admin.DELETE("/users/:id", c.user.Delete)

		admin.POST("/goals", c.goal.Create)
		admin.GET("/goals", c.goal.List)
		admin.GET("/goals/progress", c.goal.ListWithProgress)
		admin.PUT("/goals/reorder", c.goal.Reorder)
		admin.PUT("/goals/:id", c.goal.Update)
		admin.DELETE("/goals/:id", c.goal.Delete)
		admin.PATCH("/goals/:id/visibility", c.goal.SetVisibility)

		admin.PUT("/settings", c.settings.Update)
	}
}
