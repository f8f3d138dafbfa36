package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/time/rate"

	"eventledger/config"
	delivery "eventledger/internal/delivery/http"
	"eventledger/internal/delivery/http/controllers"
	"eventledger/internal/delivery/http/middleware"
	"eventledger/internal/repository/postgres"
	"eventledger/internal/services"
	"eventledger/migrations"

	_ "eventledger/docs"
)

const serviceTimeout = 5 * time.Second

// @title Event Ledger API
// @version 1.0
// @description Record-keeping service for events, users, and their creator/attendee links.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	if err := migrations.AutoMigrate(db); err != nil {
		logger.Error("migrate", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	linkRepo := postgres.NewLinkRepository(db)

	eventService := services.NewEventService(eventRepo, userRepo, linkRepo, serviceTimeout)
	userService := services.NewUserService(userRepo, linkRepo, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	userController := controllers.NewUserController(logger, userService)

	mux := delivery.NewRouter(eventController, userController)

	limiter := middleware.NewRateLimiter(rate.Limit(10), 20)
	var handler http.Handler = limiter.Handler(mux)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.Logging(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
