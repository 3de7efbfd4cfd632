package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contracthub/internal/service"
)

// CreateExtraction logs a field-extraction result against a contract.
//
// @Summary Log an extraction for a contract
// @Tags extractions
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param extraction body service.ExtractionInput true "Extraction fields"
// @Success 201 {object} model.Extraction
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /contracts/{id}/extractions [post]
func CreateExtraction(svc service.ExtractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contractID := c.Params("id")
		if _, err := uuid.Parse(contractID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid contract id format")
		}

		var in service.ExtractionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		extraction, err := svc.Create(c.UserContext(), contractID, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrExtractionFieldsRequired):
				return writeError(c, fiber.StatusBadRequest, "FIELDS_REQUIRED", "extracted fields are required")
			case errors.Is(err, service.ErrContractNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(extraction)
	}
}

// ListExtractions returns a contract's extraction log, newest first.
//
// @Summary List a contract's extractions
// @Tags extractions
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {array} model.Extraction
// @Failure 404 {object} errorPayload
// @Router /contracts/{id}/extractions [get]
func ListExtractions(svc service.ExtractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contractID := c.Params("id")
		if _, err := uuid.Parse(contractID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid contract id format")
		}

		extractions, err := svc.ListByContract(c.UserContext(), contractID)
		if err != nil {
			if errors.Is(err, service.ErrContractNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(extractions)
	}
}
