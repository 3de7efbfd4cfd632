package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contracthub/internal/service"
)

// ListAuditEvents returns the audit trail, newest first, optionally filtered
// by contract.
//
// @Summary List audit events
// @Tags audit
// @Produce json
// @Param contract_id query string false "Filter by contract ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.AuditListResult
// @Failure 400 {object} errorPayload
// @Router /audit [get]
func ListAuditEvents(svc service.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var contractID *string
		if v := c.Query("contract_id"); v != "" {
			if _, err := uuid.Parse(v); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid contract id format")
			}
			contractID = &v
		}

		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), contractID, limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
