package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contracthub/internal/service"
)

// CreateVendor registers a vendor.
//
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body service.VendorInput true "Vendor fields"
// @Success 201 {object} model.Vendor
// @Failure 400 {object} errorPayload
// @Router /vendors [post]
func CreateVendor(svc service.VendorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.VendorInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		vendor, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrVendorNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "vendor name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(vendor)
	}
}

// UpdateVendor replaces a vendor's editable fields.
//
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param vendor body service.VendorInput true "Vendor fields"
// @Success 200 {object} model.Vendor
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /vendors/{id} [put]
func UpdateVendor(svc service.VendorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in service.VendorInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		vendor, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrVendorNameRequired):
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "vendor name is required")
			case errors.Is(err, service.ErrVendorNotFound), errors.Is(err, sql.ErrNoRows):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "vendor not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(vendor)
	}
}

// GetVendor returns one vendor by id.
//
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} model.Vendor
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /vendors/{id} [get]
func GetVendor(svc service.VendorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		vendor, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrVendorNotFound) || errors.Is(err, sql.ErrNoRows) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "vendor not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(vendor)
	}
}

// ListVendors returns all vendors ordered by name.
//
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} model.Vendor
// @Router /vendors [get]
func ListVendors(svc service.VendorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendors, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(vendors)
	}
}
