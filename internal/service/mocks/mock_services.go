package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"contracthub/internal/model"
	"contracthub/internal/service"
	"contracthub/internal/storage"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, contractID, filename string, r io.Reader, contentType, actor string) (*model.Document, error) {
	args := m.Called(ctx, contractID, filename, r, contentType, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) ListByContract(ctx context.Context, contractID string) ([]model.Document, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, storageName string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, storageName)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockDocumentService) Verify(ctx context.Context, storageName string) (*service.VerificationResult, error) {
	args := m.Called(ctx, storageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VerificationResult), args.Error(1)
}

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) SetTags(ctx context.Context, contractID string, names []string, actor string) error {
	args := m.Called(ctx, contractID, names, actor)
	return args.Error(0)
}

func (m *MockTagService) GetTags(ctx context.Context, contractID string) ([]string, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, contractID *string, action, actor, details string) error {
	args := m.Called(ctx, contractID, action, actor, details)
	return args.Error(0)
}

func (m *MockAuditService) List(ctx context.Context, contractID *string, limit, offset int) (*service.AuditListResult, error) {
	args := m.Called(ctx, contractID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuditListResult), args.Error(1)
}

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Create(ctx context.Context, in service.ContractInput) (*model.Contract, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) Update(ctx context.Context, id string, in service.ContractInput) (*model.Contract, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) List(ctx context.Context) ([]model.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contract), args.Error(1)
}

func (m *MockContractService) Stats(ctx context.Context) ([]model.ContractStateCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContractStateCount), args.Error(1)
}

type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) Create(ctx context.Context, in service.VendorInput) (*model.Vendor, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) Update(ctx context.Context, id string, in service.VendorInput) (*model.Vendor, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) Get(ctx context.Context, id string) (*model.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorService) List(ctx context.Context) ([]model.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Create(ctx context.Context, contractID string, in service.ExtractionInput) (*model.Extraction, error) {
	args := m.Called(ctx, contractID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Extraction), args.Error(1)
}

func (m *MockExtractionService) ListByContract(ctx context.Context, contractID string) ([]model.Extraction, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Extraction), args.Error(1)
}
