package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
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
	"contracthub/internal/storage"
)

func multipartDocument(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/contracts/:id/documents", UploadDocument(mockSvc))

	contractID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		body, ct := multipartDocument(t, "report.pdf", "hello world")

		expectedDoc := &model.Document{
			ID:         uuid.New().String(),
			ContractID: contractID,
			Filename:   "report.pdf",
			Version:    1,
		}
		mockSvc.On("Upload", mock.Anything, contractID, "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contractID+"/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expectedDoc.ID, result.ID)
		assert.Equal(t, 1, result.Version)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid contract id", func(t *testing.T) {
		body, ct := multipartDocument(t, "report.pdf", "hello")

		req := httptest.NewRequest(http.MethodPost, "/contracts/not-a-uuid/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})

	t.Run("no document field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contractID+"/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "DOCUMENT_REQUIRED", res.Error.Code)
	})

	t.Run("contract not found", func(t *testing.T) {
		body, ct := multipartDocument(t, "report.pdf", "hello")

		mockSvc.On("Upload", mock.Anything, contractID, "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrContractNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contractID+"/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("version conflict", func(t *testing.T) {
		body, ct := multipartDocument(t, "report.pdf", "hello")

		mockSvc.On("Upload", mock.Anything, contractID, "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrVersionConflict).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contractID+"/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VERSION_CONFLICT", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty content", func(t *testing.T) {
		body, ct := multipartDocument(t, "report.pdf", "")

		mockSvc.On("Upload", mock.Anything, contractID, "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrEmptyContent).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contractID+"/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "EMPTY_CONTENT", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		body, ct := multipartDocument(t, "report.pdf", "hello")

		mockSvc.On("Upload", mock.Anything, contractID, "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("upload failed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/contracts/"+contractID+"/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/contracts/:id/documents", ListDocuments(mockSvc))

	contractID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		docs := []model.Document{
			{ID: uuid.New().String(), ContractID: contractID, Version: 2},
			{ID: uuid.New().String(), ContractID: contractID, Version: 1},
		}
		mockSvc.On("ListByContract", mock.Anything, contractID).Return(docs, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts/"+contractID+"/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 2)
		assert.Equal(t, 2, result[0].Version)
		mockSvc.AssertExpectations(t)
	})

	t.Run("contract not found", func(t *testing.T) {
		mockSvc.On("ListByContract", mock.Anything, contractID).Return(nil, service.ErrContractNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/contracts/"+contractID+"/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contracts/nope/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDownloadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:name/download", DownloadDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		name := uuid.New().String() + "_1_report.pdf"
		content := []byte("stored bytes")
		info := storage.ObjectInfo{Name: name, Size: int64(len(content)), ContentType: "application/pdf"}
		mockSvc.On("Download", mock.Anything, name).
			Return(io.NopCloser(bytes.NewReader(content)), info, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+name+"/download", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

		got, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, got)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid storage name", func(t *testing.T) {
		mockSvc.On("Download", mock.Anything, "..").
			Return(nil, storage.ObjectInfo{}, service.ErrStorageNameInvalid).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/../download", nil)
		resp, _ := app.Test(req)

		// Either the router rejects the traversal outright or the handler
		// maps it to a 4xx; it must never reach storage as a path.
		assert.True(t, resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound)
	})

	t.Run("missing object", func(t *testing.T) {
		name := uuid.New().String() + "_1_gone.pdf"
		mockSvc.On("Download", mock.Anything, name).
			Return(nil, storage.ObjectInfo{}, errors.New("object does not exist")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+name+"/download", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestVerifyDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:name/verify", VerifyDocument(mockSvc))

	t.Run("match", func(t *testing.T) {
		name := uuid.New().String() + "_3_contract.pdf"
		res := &service.VerificationResult{
			StorageName:    name,
			RecordedSHA256: "abc",
			ComputedSHA256: "abc",
			Match:          true,
		}
		mockSvc.On("Verify", mock.Anything, name).Return(res, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+name+"/verify", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.VerificationResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.True(t, result.Match)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown storage name", func(t *testing.T) {
		name := uuid.New().String() + "_9_missing.pdf"
		mockSvc.On("Verify", mock.Anything, name).Return(nil, service.ErrDocumentNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+name+"/verify", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
