package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contracthub/internal/service"
)

func writeContractInputError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
	case errors.Is(err, service.ErrOwnerRequired):
		return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner is required")
	case errors.Is(err, service.ErrInvalidState):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATE", "state is not an allowed contract state")
	case errors.Is(err, service.ErrVendorNotFound):
		return writeError(c, fiber.StatusBadRequest, "INVALID_VENDOR", "vendor does not exist")
	case errors.Is(err, service.ErrContractNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// CreateContract creates a contract together with its tag set.
//
// @Summary Create a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body service.ContractInput true "Contract fields"
// @Success 201 {object} model.Contract
// @Failure 400 {object} errorPayload
// @Router /contracts [post]
func CreateContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ContractInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		contract, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeContractInputError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(contract)
	}
}

// UpdateContract replaces a contract's editable fields and its tag set.
//
// @Summary Update a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param contract body service.ContractInput true "Contract fields"
// @Success 200 {object} model.Contract
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /contracts/{id} [put]
func UpdateContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in service.ContractInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		contract, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeContractInputError(c, err)
		}
		return c.JSON(contract)
	}
}

// GetContract returns one contract with its vendor name resolved.
//
// @Summary Get a contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} model.Contract
// @Failure 404 {object} errorPayload
// @Router /contracts/{id} [get]
func GetContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		contract, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrContractNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(contract)
	}
}

// ListContracts returns all contracts, most recently updated first.
//
// @Summary List contracts
// @Tags contracts
// @Produce json
// @Success 200 {array} model.Contract
// @Router /contracts [get]
func ListContracts(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contracts, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(contracts)
	}
}

// ContractStats returns the count of contracts per state.
//
// @Summary Contract counts per state
// @Tags contracts
// @Produce json
// @Success 200 {array} model.ContractStateCount
// @Router /contracts/stats [get]
func ContractStats(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stats)
	}
}

// tagsPayload is the request/response body for a contract's tag set. Tags is
// the raw comma-separated form; the server normalizes it.
type tagsPayload struct {
	Tags  string `json:"tags"`
	Actor string `json:"actor,omitempty"`
}

// SetContractTags replaces a contract's full tag set.
//
// @Summary Replace a contract's tag set
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param tags body tagsPayload true "Comma-separated tags"
// @Success 200 {array} string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /contracts/{id}/tags [put]
func SetContractTags(tagSvc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in tagsPayload
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		if err := tagSvc.SetTags(c.UserContext(), id, service.ParseTagList(in.Tags), in.Actor); err != nil {
			if errors.Is(err, service.ErrContractNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		tags, err := tagSvc.GetTags(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(tags)
	}
}

// GetContractTags returns a contract's tag names sorted ascending.
//
// @Summary Get a contract's tags
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {array} string
// @Failure 404 {object} errorPayload
// @Router /contracts/{id}/tags [get]
func GetContractTags(tagSvc service.TagService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		tags, err := tagSvc.GetTags(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrContractNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contract not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(tags)
	}
}
