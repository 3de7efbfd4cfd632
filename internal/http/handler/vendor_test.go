package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contracthub/internal/model"
	"contracthub/internal/service"
	serviceMocks "contracthub/internal/service/mocks"
)

func TestCreateVendor(t *testing.T) {
	mockSvc := new(serviceMocks.MockVendorService)
	app := fiber.New()
	app.Post("/vendors", CreateVendor(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.VendorInput{Name: "Acme"}
		expected := &model.Vendor{ID: uuid.New().String(), Name: "Acme"}
		mockSvc.On("Create", mock.Anything, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/vendors", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Vendor
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrVendorNameRequired).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/vendors", service.VendorInput{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NAME_REQUIRED", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateVendor(t *testing.T) {
	mockSvc := new(serviceMocks.MockVendorService)
	app := fiber.New()
	app.Put("/vendors/:id", UpdateVendor(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		in := service.VendorInput{Name: "Acme Corp"}
		expected := &model.Vendor{ID: id, Name: "Acme Corp"}
		mockSvc.On("Update", mock.Anything, id, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/vendors/"+id, in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, service.ErrVendorNotFound).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/vendors/"+id, service.VendorInput{Name: "x"}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/vendors/nope", service.VendorInput{Name: "x"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetVendor(t *testing.T) {
	mockSvc := new(serviceMocks.MockVendorService)
	app := fiber.New()
	app.Get("/vendors/:id", GetVendor(mockSvc))

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &model.Vendor{ID: id, Name: "Acme"}
		mockSvc.On("Get", mock.Anything, id).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/vendors/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Vendor
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrVendorNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/vendors/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/vendors/nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListVendors(t *testing.T) {
	mockSvc := new(serviceMocks.MockVendorService)
	app := fiber.New()
	app.Get("/vendors", ListVendors(mockSvc))

	vendors := []model.Vendor{{ID: uuid.New().String(), Name: "Acme"}}
	mockSvc.On("List", mock.Anything).Return(vendors, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/vendors", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result []model.Vendor
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Len(t, result, 1)
	mockSvc.AssertExpectations(t)
}

func TestCreateExtraction(t *testing.T) {
	mockSvc := new(serviceMocks.MockExtractionService)
	app := fiber.New()
	app.Post("/contracts/:id/extractions", CreateExtraction(mockSvc))

	contractID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		in := service.ExtractionInput{ExtractedFields: "term: 12 months", Status: "pending"}
		expected := &model.Extraction{ID: uuid.New().String(), ContractID: contractID, Status: "pending"}
		mockSvc.On("Create", mock.Anything, contractID, in).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/contracts/"+contractID+"/extractions", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, contractID, mock.Anything).Return(nil, service.ErrExtractionFieldsRequired).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/contracts/"+contractID+"/extractions", service.ExtractionInput{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FIELDS_REQUIRED", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("contract not found", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, contractID, mock.Anything).Return(nil, service.ErrContractNotFound).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/contracts/"+contractID+"/extractions", service.ExtractionInput{ExtractedFields: "x"}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListExtractions(t *testing.T) {
	mockSvc := new(serviceMocks.MockExtractionService)
	app := fiber.New()
	app.Get("/contracts/:id/extractions", ListExtractions(mockSvc))

	contractID := uuid.New().String()

	extractions := []model.Extraction{{ID: uuid.New().String(), ContractID: contractID}}
	mockSvc.On("ListByContract", mock.Anything, contractID).Return(extractions, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/contracts/"+contractID+"/extractions", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result []model.Extraction
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Len(t, result, 1)
	mockSvc.AssertExpectations(t)
}

func TestListAuditEvents(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuditService)
	app := fiber.New()
	app.Get("/audit", ListAuditEvents(mockSvc))

	t.Run("unfiltered with defaults", func(t *testing.T) {
		res := &service.AuditListResult{
			Items: []model.AuditEvent{{ID: 2, Action: "Updated contract"}, {ID: 1, Action: "Created contract"}},
			Total: 2,
		}
		mockSvc.On("List", mock.Anything, (*string)(nil), 50, 0).Return(res, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/audit", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.AuditListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, 2, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("filtered by contract", func(t *testing.T) {
		contractID := uuid.New().String()
		res := &service.AuditListResult{Items: []model.AuditEvent{{ID: 7, Action: "Uploaded document"}}, Total: 1}
		mockSvc.On("List", mock.Anything, mock.MatchedBy(func(id *string) bool {
			return id != nil && *id == contractID
		}), 10, 5).Return(res, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/audit?contract_id="+contractID+"&limit=10&offset=5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid contract id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audit?contract_id=nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audit?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_LIMIT", res.Error.Code)
	})
}
