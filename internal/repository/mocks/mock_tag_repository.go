package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) ReplaceForContract(ctx context.Context, contractID string, names []string) error {
	args := m.Called(ctx, contractID, names)
	return args.Error(0)
}

func (m *MockTagRepository) ListByContract(ctx context.Context, contractID string) ([]string, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
