package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"database/sql"

	"github.com/arthverse/finance-service/internal/cache"
	"github.com/arthverse/finance-service/internal/config"
	"github.com/arthverse/finance-service/internal/handler"
	"github.com/arthverse/finance-service/internal/integrations/classifier"
	"github.com/arthverse/finance-service/internal/integrations/rates"
	"github.com/arthverse/finance-service/internal/integrations/razorpay"
	"github.com/arthverse/finance-service/internal/integrations/setu"
	"github.com/arthverse/finance-service/internal/middleware"
	"github.com/arthverse/finance-service/internal/repository"
	"github.com/arthverse/finance-service/internal/service"
	"github.com/arthverse/finance-service/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
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
	redisCache := cache.New(cfg.RedisAddr)
	setuClient := setu.NewClient(cfg, logger).WithTokenCache(redisCache)
	razorpayClient := razorpay.NewClient(cfg, logger)
	ratesClient := rates.NewClient(cfg, logger)
	mailer := email.NewSender(cfg, logger)
	cls := classifier.New(cfg.OpenAIAPIKey, logger)
	svc := service.NewService(repo, logger, cfg, redisCache, setuClient, razorpayClient, ratesClient, mailer, cls)
	h := handler.NewHandler(svc)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", h.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Login).Methods("POST")
	api.HandleFunc("/payment/plans", h.Plans).Methods("GET")
	api.HandleFunc("/rates/benchmark", h.BenchmarkRates).Methods("GET")

	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/auth/me", h.Me).Methods("GET")
	authRouter.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/transactions/{id}", h.DeleteTransaction).Methods("DELETE")
	authRouter.HandleFunc("/ai/categorize", h.CategorizeExpense).Methods("POST")
	authRouter.HandleFunc("/questionnaire", h.SaveQuestionnaire).Methods("POST")
	authRouter.HandleFunc("/questionnaire", h.GetQuestionnaire).Methods("GET")
	authRouter.HandleFunc("/questionnaire", h.ResetQuestionnaire).Methods("DELETE")
	authRouter.HandleFunc("/reports/health-score", h.HealthScore).Methods("GET")
	authRouter.HandleFunc("/reports/pl", h.PLStatement).Methods("GET")
	authRouter.HandleFunc("/reports/balance-sheet", h.BalanceSheet).Methods("GET")
	authRouter.HandleFunc("/reports/protection-gap", h.ProtectionGap).Methods("GET")
	authRouter.HandleFunc("/reports/loans/{index}/schedule", h.LoanSchedule).Methods("GET")
	authRouter.HandleFunc("/setu/consent", h.StartConsent).Methods("POST")
	authRouter.HandleFunc("/setu/consent/{id}/status", h.ConsentStatus).Methods("GET")
	authRouter.HandleFunc("/setu/fetch", h.FetchFinancialData).Methods("POST")
	authRouter.HandleFunc("/setu/financial-data", h.FinancialData).Methods("GET")
	authRouter.HandleFunc("/payment/create-order", h.CreateOrder).Methods("POST")
	authRouter.HandleFunc("/payment/verify", h.VerifyPayment).Methods("POST")
	authRouter.HandleFunc("/payment/status", h.PaymentStatus).Methods("GET")

	// Poll pending bank-link consents in the background
	c := cron.New()
	if _, err := c.AddFunc(cfg.ConsentPollSchedule, svc.PollPendingConsents); err != nil {
		logger.Fatalf("Invalid consent poll schedule: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}
