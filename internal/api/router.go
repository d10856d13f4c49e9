package api

import (
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/api/handler"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/api/middleware"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/config"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/logger"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(planner *service.PlannerService, cfg *config.Config, log *logger.Logger) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	jobHandler := handler.NewJobHandler(planner)
	machineHandler := handler.NewMachineHandler(planner)
	statsHandler := handler.NewStatsHandler(planner)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Jobs
		v1.POST("/jobs", jobHandler.Plan)
		v1.GET("/jobs", jobHandler.List)
		v1.GET("/jobs/:id", jobHandler.Get)
		v1.DELETE("/jobs/:id", jobHandler.Delete)
		v1.PATCH("/jobs/:id/value", jobHandler.UpdateValue)
		v1.POST("/jobs/:id/reschedule", jobHandler.Reschedule)

		// Machines
		v1.GET("/machines", machineHandler.List)
		v1.GET("/machines/:name/load", machineHandler.Load)

		// Dashboard
		v1.GET("/stats", statsHandler.Stats)
		v1.GET("/reps", statsHandler.Reps)
	}

	return r
}
