package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/finlearn/finlearn-api/internal/catalog"
	"github.com/finlearn/finlearn-api/internal/config"
	"github.com/finlearn/finlearn-api/internal/handler"
	"github.com/finlearn/finlearn-api/internal/integrations/yahoo"
	"github.com/finlearn/finlearn-api/internal/middleware"
	"github.com/finlearn/finlearn-api/internal/scheduler"
	"github.com/finlearn/finlearn-api/internal/service"
	"github.com/finlearn/finlearn-api/internal/store"
	"github.com/finlearn/finlearn-api/internal/utils/email"
	"github.com/gorilla/mux"
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

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Load fund and challenge catalogs
	cat, err := catalog.Load(cfg.FundCatalogPath, cfg.ChallengeCatalogPath)
	if err != nil {
		logger.Fatalf("Failed to load catalogs: %v", err)
	}

	// Initialize layers
	st := store.New(cfg.LevelSyncOnChallenge)
	market := yahoo.NewClient(cfg.MarketBaseURL, cfg.MarketTimeout, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(market, st, cat, mailer, logger)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	h.RegisterRoutes(r)

	// Market snapshot job
	sched := scheduler.New(context.Background(), svc, logger)
	if err := sched.Register(cfg.TrendsCron); err != nil {
		logger.Fatalf("Failed to register scheduler jobs: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout: 10 * time.Second,
		// The fund batch makes one provider call per catalog entry, each
		// bounded by the market client timeout.
		WriteTimeout: 120 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
