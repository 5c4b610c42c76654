package handlers

import (
	"github.com/careerlane/job-portal/internal/config"
	"github.com/careerlane/job-portal/internal/middleware"
	"github.com/careerlane/job-portal/internal/models"
	"github.com/careerlane/job-portal/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires services, handlers and routes onto a gin engine.
// main and the HTTP tests share this table.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	authService := services.NewAuthService(db, cfg.JWTSecret)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	dashboardService := services.NewDashboardService(db)

	authHandler := NewAuthHandler(authService, cfg.CookieSecure)
	jobHandler := NewJobHandler(jobService)
	applicationHandler := NewApplicationHandler(applicationService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	authenticate := middleware.Authenticate(cfg.JWTSecret)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authenticate, authHandler.Me)
		}

		jobs := api.Group("/jobs")
		{
			// Public routes
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)

			// Recruiter routes; ownership is checked in the service
			jobs.POST("", authenticate, middleware.RequireRoles(models.RoleRecruiter), jobHandler.CreateJob)
			jobs.PUT("/:id", authenticate, middleware.RequireRoles(models.RoleRecruiter), jobHandler.UpdateJob)
			jobs.DELETE("/:id", authenticate, middleware.RequireRoles(models.RoleRecruiter), jobHandler.DeleteJob)
		}

		applications := api.Group("/applications", authenticate)
		{
			applications.GET("/dashboard/user", middleware.RequireRoles(models.RoleUser), dashboardHandler.UserDashboard)
			applications.GET("/dashboard/recruiter", middleware.RequireRoles(models.RoleRecruiter), dashboardHandler.RecruiterDashboard)

			applications.POST("/:jobId", middleware.RequireRoles(models.RoleUser), applicationHandler.Apply)
			applications.GET("/job/:jobId", middleware.RequireRoles(models.RoleRecruiter), applicationHandler.ListForJob)
			applications.PUT("/:applicationId", middleware.RequireRoles(models.RoleRecruiter), applicationHandler.UpdateStatus)
			applications.DELETE("/:applicationId", middleware.RequireRoles(models.RoleUser), applicationHandler.Withdraw)
		}
	}

	return r
}
