package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/expenses-dev/expenses-service/internal/config"
	"github.com/expenses-dev/expenses-service/internal/handler"
	"github.com/expenses-dev/expenses-service/internal/jobs"
	"github.com/expenses-dev/expenses-service/internal/middleware"
	"github.com/expenses-dev/expenses-service/internal/repository"
	"github.com/expenses-dev/expenses-service/internal/service"
)

func main() {
	// A missing .env file is fine, the environment still applies.
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc, logger)

	// Daily per-currency summary
	summary := jobs.NewSummary(repo, logger, cfg.SummarySchedule)
	if err := summary.Start(); err != nil {
		logger.Fatalf("Failed to start summary job: %v", err)
	}
	defer summary.Stop()

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.CorrelationID)
	r.Use(middleware.RequestLogger(logger))
	h.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
