package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/api"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/config"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/logger"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/repository"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/schedule"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/service"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}

	// Initialize logger
	log := logger.NewDefault()
	logger.SetDefaultLogger(log)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	processRepo := repository.NewProcessRepository(db)
	jobRepo := repository.NewJobRepository(db)
	stepRepo := repository.NewStepRepository(db)

	// Sync the machine catalog from configuration
	ctx := context.Background()
	defs := make([]domain.ProcessDefinition, 0, len(cfg.Machines))
	for _, m := range cfg.Machines {
		defs = append(defs, domain.ProcessDefinition{
			Name:        m.Name,
			RatePerHour: m.RatePerHour,
			BufferHours: m.BufferHours,
		})
	}
	if err := processRepo.Sync(ctx, defs); err != nil {
		log.Fatalf("Failed to sync machine catalog: %v", err)
	}
	log.Infof("Machine catalog loaded: %d processes", len(defs))

	// Initialize the planner
	cal := schedule.Calendar{
		ShiftStartHour: cfg.Shift.StartHour,
		ShiftEndHour:   cfg.Shift.EndHour,
		Step:           time.Duration(cfg.Shift.StepMinutes) * time.Minute,
		MaxAdvance:     time.Duration(cfg.Shift.MaxAdvanceDays) * 24 * time.Hour,
	}
	planner := service.NewPlannerService(jobRepo, stepRepo, cal, defs, log, &service.PlannerConfig{
		SetupHours:    cfg.Planner.SetupHours,
		RevenueTarget: cfg.Planner.RevenueTarget,
		Currency:      cfg.Planner.Currency,
		Reps:          cfg.Reps,
	})

	// Setup router
	router := api.SetupRouter(planner, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting API server on port %d (mode=%s)", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Infof("Server exited")
}
