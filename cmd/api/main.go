package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelancima-backend/config"
	v1 "freelancima-backend/internal/delivery/http/v1"
	"freelancima-backend/internal/repository/postgres"
	"freelancima-backend/internal/usecase"
	"freelancima-backend/pkg/database"
	"freelancima-backend/pkg/logger"
	"freelancima-backend/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting freelancima backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Repositories
	freelancerRepo := postgres.NewFreelancerRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	// 6. Setup UseCases
	browseUC := usecase.NewBrowseUsecase(freelancerRepo)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	statsUC := usecase.NewStatsUsecase(statsRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		BrowseUC: browseUC,
		AuthUC:   authUC,
		StatsUC:  statsUC,
		Config:   cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
