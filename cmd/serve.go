package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/recargaexpress/ms-go-recharges/app/controller"
	"github.com/recargaexpress/ms-go-recharges/app/notify"
	"github.com/recargaexpress/ms-go-recharges/app/repository"
	"github.com/recargaexpress/ms-go-recharges/app/service"
	"github.com/recargaexpress/ms-go-recharges/config"

	_ "github.com/go-sql-driver/mysql"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP server for plans, transactions and admin notifications.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	hub := notify.NewHub(cfg.Notifications.SessionBuffer)

	planRepo := repository.NewPlanRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	planService := service.NewPlanService(planRepo)
	transactionService := service.NewTransactionService(transactionRepo, hub)

	planController := controller.NewPlanController(planService)
	transactionController := controller.NewTransactionController(transactionService)
	adminController := controller.NewAdminController(cfg.Admin, cfg.Support)
	streamController := controller.NewStreamController(hub)

	e := setupHTTPServer(planController, transactionController, adminController, streamController)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func setupHTTPServer(
	planController *controller.PlanController,
	transactionController *controller.TransactionController,
	adminController *controller.AdminController,
	streamController *controller.StreamController,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogHost:      true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
				"request_id": v.RequestID,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))

	e.GET("/health", adminController.Health)

	api := e.Group("/api")
	api.GET("/support-info", adminController.SupportInfo)
	api.GET("/plans", planController.ListPlans)
	api.GET("/plans/:id", planController.GetPlan)
	api.POST("/transactions", transactionController.CreateTransaction)
	api.POST("/transactions/:id/proof", transactionController.SubmitProof)

	admin := api.Group("/admin")
	admin.POST("/login", adminController.Login)
	admin.GET("/plans", planController.ListPlans)
	admin.POST("/plans", planController.CreatePlan)
	admin.PUT("/plans/:id", planController.UpdatePlan)
	admin.DELETE("/plans/:id", planController.DeletePlan)
	admin.GET("/transactions", transactionController.ListTransactions)
	admin.POST("/transactions/:id/process", transactionController.ProcessTransaction)
	admin.GET("/notifications-stream", streamController.NotificationsStream)
	admin.GET("/stats", transactionController.Stats)
	admin.POST("/reset-stats", transactionController.ResetStats)

	return e
}
