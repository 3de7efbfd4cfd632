package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"contracthub/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (storage.ObjectInfo, error) {
	args := m.Called(ctx, name, r, size, contentType)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, int64, string) storage.ObjectInfo); ok {
		return f(ctx, name, r, size, contentType), args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockStorage) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, name string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, name, expiry)
	return args.String(0), args.Error(1)
}
