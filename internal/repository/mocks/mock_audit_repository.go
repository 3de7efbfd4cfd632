package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, event *model.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, contractID *string, pq repository.PageQuery) (*repository.PageResult[model.AuditEvent], error) {
	args := m.Called(ctx, contractID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AuditEvent]), args.Error(1)
}

// MockTxManager runs the callback inline so service tests exercise the same
// code path that runs inside a real transaction.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
