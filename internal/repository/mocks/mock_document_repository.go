package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contracthub/internal/model"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) NextVersion(ctx context.Context, contractID string) (int, error) {
	args := m.Called(ctx, contractID)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentRepository) ListByContract(ctx context.Context, contractID string) ([]model.Document, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindByStorageName(ctx context.Context, storageName string) (*model.Document, error) {
	args := m.Called(ctx, storageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
