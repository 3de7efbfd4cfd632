package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"contracthub/internal/service"
)

// Services bundles the use-case dependencies the routes need.
type Services struct {
	Documents   service.DocumentService
	Contracts   service.ContractService
	Vendors     service.VendorService
	Extractions service.ExtractionService
	Tags        service.TagService
	Audit       service.AuditService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/contracts", CreateContract(svcs.Contracts))
	app.Get("/contracts", ListContracts(svcs.Contracts))
	app.Get("/contracts/stats", ContractStats(svcs.Contracts))
	app.Get("/contracts/:id", GetContract(svcs.Contracts))
	app.Put("/contracts/:id", UpdateContract(svcs.Contracts))

	app.Post("/contracts/:id/documents", UploadDocument(svcs.Documents))
	app.Get("/contracts/:id/documents", ListDocuments(svcs.Documents))
	app.Get("/documents/:name/download", DownloadDocument(svcs.Documents))
	app.Get("/documents/:name/verify", VerifyDocument(svcs.Documents))

	app.Put("/contracts/:id/tags", SetContractTags(svcs.Tags))
	app.Get("/contracts/:id/tags", GetContractTags(svcs.Tags))

	app.Post("/contracts/:id/extractions", CreateExtraction(svcs.Extractions))
	app.Get("/contracts/:id/extractions", ListExtractions(svcs.Extractions))

	app.Post("/vendors", CreateVendor(svcs.Vendors))
	app.Get("/vendors", ListVendors(svcs.Vendors))
	app.Get("/vendors/:id", GetVendor(svcs.Vendors))
	app.Put("/vendors/:id", UpdateVendor(svcs.Vendors))

	app.Get("/audit", ListAuditEvents(svcs.Audit))
}
