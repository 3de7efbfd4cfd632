package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contracthub/internal/service"
)

// UploadDocument accepts a multipart upload (field name: document) and stores
// it as the contract's next revision.
//
// @Summary Upload a new document revision for a contract
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Contract ID"
// @Param document formData file true "Document content"
// @Param actor formData string false "Actor label for the audit trail"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /contracts/{id}/documents [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contractID := c.Params("id")
		if _, err := uuid.Parse(contractID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid contract id format")
		}

		fh, err := c.FormFile("document")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "DOCUMENT_REQUIRED", "document file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "DOCUMENT_OPEN_ERROR", "cannot open uploaded document")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		actor := c.FormValue("actor")

		doc, err := svc.Upload(c.UserContext(), contractID, fh.Filename, f, ct, actor)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFilenameRequired):
				return writeError(c, fiber.StatusBadRequest, "FILENAME_REQUIRED", "a usable filename is required")
			case errors.Is(err, service.ErrEmptyContent):
				return writeError(c, fiber.StatusBadRequest, "EMPTY_CONTENT", "document content is empty")
			case errors.Is(err, service.ErrContractNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			case errors.Is(err, service.ErrVersionConflict):
				return writeError(c, fiber.StatusConflict, "VERSION_CONFLICT", "version assignment conflicted, retry the upload")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListDocuments returns a contract's revisions, newest version first.
//
// @Summary List a contract's document revisions
// @Tags documents
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {array} model.Document
// @Failure 404 {object} errorPayload
// @Router /contracts/{id}/documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contractID := c.Params("id")
		if _, err := uuid.Parse(contractID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid contract id format")
		}

		docs, err := svc.ListByContract(c.UserContext(), contractID)
		if err != nil {
			if errors.Is(err, service.ErrContractNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(docs)
	}
}

// DownloadDocument streams the stored bytes for a storage name.
//
// @Summary Download stored document bytes
// @Tags documents
// @Produce octet-stream
// @Param name path string true "Storage name"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{name}/download [get]
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		rc, info, err := svc.Download(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, service.ErrStorageNameInvalid) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_STORAGE_NAME", "storage name is not valid")
			}
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
		return c.SendStream(rc, int(info.Size))
	}
}

// VerifyDocument rehashes the stored bytes and compares the result with the
// digest recorded at upload time.
//
// @Summary Verify a stored document against its recorded digest
// @Tags documents
// @Produce json
// @Param name path string true "Storage name"
// @Success 200 {object} service.VerificationResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{name}/verify [get]
func VerifyDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		res, err := svc.Verify(c.UserContext(), name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrStorageNameInvalid):
				return writeError(c, fiber.StatusBadRequest, "INVALID_STORAGE_NAME", "storage name is not valid")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
