package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"contracthub/docs"
	"contracthub/internal/config"
	"contracthub/internal/database"
	"contracthub/internal/database/migration"
	handlers "contracthub/internal/http/handler"
	"contracthub/internal/http/middleware"
	"contracthub/internal/otel"
	"contracthub/internal/repository/postgres"
	"contracthub/internal/service"
	"contracthub/internal/storage"
)

// @title ContractHub API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories share the DB handle; mutations join transactions opened
	// by the tx manager through the request context.
	txManager := postgres.NewTxManager(db)
	docRepo := postgres.NewDocumentPostgres(db)
	contractRepo := postgres.NewContractPostgres(db)
	vendorRepo := postgres.NewVendorPostgres(db)
	extractionRepo := postgres.NewExtractionPostgres(db)
	tagRepo := postgres.NewTagPostgres(db)
	auditRepo := postgres.NewAuditPostgres(db)

	svcs := handlers.Services{
		Documents:   service.NewDocumentService(objStore, docRepo, contractRepo, auditRepo, txManager, cfg.Upload.VersionRetries),
		Contracts:   service.NewContractService(contractRepo, tagRepo, auditRepo, txManager),
		Vendors:     service.NewVendorService(vendorRepo, auditRepo, txManager),
		Extractions: service.NewExtractionService(extractionRepo, contractRepo, auditRepo, txManager),
		Tags:        service.NewTagService(tagRepo, contractRepo, auditRepo, txManager),
		Audit:       service.NewAuditService(auditRepo),
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Upload.MaxBytes,
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	handlers.RegisterRoutes(app, db, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
