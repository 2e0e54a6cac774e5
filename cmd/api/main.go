package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jomidar/jomidar-api/docs" // Swagger docs
	"github.com/jomidar/jomidar-api/internal/config"
	"github.com/jomidar/jomidar-api/internal/handlers"
	"github.com/jomidar/jomidar-api/internal/jobs"
	"github.com/jomidar/jomidar-api/internal/middleware"
	"github.com/jomidar/jomidar-api/internal/persistence"
	"github.com/jomidar/jomidar-api/internal/services"
	"github.com/jomidar/jomidar-api/internal/storage"
	"github.com/jomidar/jomidar-api/internal/store"
	"github.com/jomidar/jomidar-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Jomidar API
// @version 1.0
// @description REST API for the Jomidar Property Management System
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the snapshot database
	db, err := persistence.Connect(cfg.DataPath)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	logger.Info("Opened database", "path", cfg.DataPath)

	// Load the persisted snapshot, seeding on first run
	snapshots := persistence.NewSnapshotStore(db, cfg.SnapshotNamespace)
	snap, err := snapshots.Load(context.Background())
	if err != nil {
		logger.Error("Failed to load snapshot", "error", err)
		os.Exit(1)
	}
	if snap == nil {
		seeded := persistence.SeedSnapshot()
		snap = &seeded
		logger.Info("No snapshot found, starting from seed data")
	}
	st := store.New(*snap)
	logger.Info("Loaded domain state",
		"properties", len(snap.Properties),
		"tenants", len(snap.Tenants),
		"payments", len(snap.Payments),
	)

	// Initialize file storage
	fileStorage, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(st, snapshots, worker, fileStorage, cfg, db)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Write a final snapshot so no applied mutation is lost
	if err := svcs.Flusher.Flush(ctx); err != nil {
		logger.Error("Failed to write final snapshot", "error", err)
	} else {
		logger.Info("Final snapshot written")
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", h.Auth.SignUp)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			protected.GET("/auth/me", h.Auth.Me)

			// Properties and nested units
			protected.GET("/properties", h.Property.Index)
			protected.POST("/properties", h.Property.Create)
			protected.GET("/properties/:property_id", h.Property.Show)
			protected.PUT("/properties/:property_id", h.Property.Update)
			protected.DELETE("/properties/:property_id", h.Property.Delete)
			protected.POST("/properties/:property_id/units", h.Property.CreateUnit)
			protected.PUT("/properties/:property_id/units/:unit_id", h.Property.UpdateUnit)
			protected.DELETE("/properties/:property_id/units/:unit_id", h.Property.DeleteUnit)

			// Tenants
			protected.GET("/tenants", h.Tenant.Index)
			protected.POST("/tenants", h.Tenant.Create)
			protected.GET("/tenants/:tenant_id", h.Tenant.Show)
			protected.PUT("/tenants/:tenant_id", h.Tenant.Update)
			protected.DELETE("/tenants/:tenant_id", h.Tenant.Delete)
			protected.POST("/tenants/:tenant_id/photo", h.Tenant.UploadPhoto)

			// Payments
			// Static route first so "stats" is not matched as :payment_id
			protected.GET("/payments", h.Payment.Index)
			protected.GET("/payments/stats", h.Payment.Stats)
			protected.POST("/payments", h.Payment.Create)
			protected.GET("/payments/:payment_id", h.Payment.Show)
			protected.PUT("/payments/:payment_id", h.Payment.Update)
			protected.DELETE("/payments/:payment_id", h.Payment.Delete)
			protected.POST("/payments/:payment_id/settle", h.Payment.Settle)
			protected.POST("/payments/:payment_id/mark_overdue", h.Payment.MarkOverdue)
			protected.GET("/payments/:payment_id/receipt", h.Payment.Receipt)

			// Documents
			// Static route first so "upload" is not matched as :document_id
			protected.GET("/documents", h.Document.Index)
			protected.POST("/documents", h.Document.Create)
			protected.POST("/documents/upload", h.Document.Upload)
			protected.GET("/documents/:document_id", h.Document.Show)
			protected.PUT("/documents/:document_id", h.Document.Update)
			protected.DELETE("/documents/:document_id", h.Document.Delete)
			protected.GET("/documents/:document_id/download", h.Document.Download)

			// Dashboard and reports
			protected.GET("/dashboard/stats", h.Dashboard.Stats)
			protected.GET("/dashboard/revenue", h.Dashboard.Revenue)
			protected.GET("/dashboard/export", h.Dashboard.Export)
			protected.GET("/reports/payments_csv", h.Dashboard.PaymentsCSV)

			// Operations
			protected.GET("/audits", h.Audit.Index)
			protected.GET("/jobs/status", h.Job.Status)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Mark past-month pending payments overdue, once at startup then twice a day
	worker.ScheduleEveryImmediate(12*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Sweeping overdue payments...")
		_, err := svcs.Payment.SweepOverdue(ctx)
		return err
	})

	// Periodic snapshot flush as a safety net for missed async writes
	worker.ScheduleEvery(5*time.Minute, func(ctx context.Context) error {
		return svcs.Flusher.Flush(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
