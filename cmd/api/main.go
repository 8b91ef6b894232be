package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"budget-service/internal/config"
	"budget-service/internal/handler"
	"budget-service/internal/jobs"
	"budget-service/internal/repository"
	"budget-service/internal/service"
	"budget-service/internal/utils/email"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration, .env first if present
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
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
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatalf("Failed to ensure schema: %v", err)
	}

	var mailer service.Mailer
	if cfg.SMTPHost != "" {
		mailer = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Schedule the orphaned-expense sweep
	sweeper := jobs.NewOrphanSweeper(repo, logger)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		logger.Fatalf("Failed to start orphan sweep: %v", err)
	}
	defer sweeper.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Router(cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
