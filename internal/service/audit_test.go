package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contracthub/internal/model"
	"contracthub/internal/repository"
	repoMocks "contracthub/internal/repository/mocks"
)

func TestAuditService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("fills actor default and timestamp", func(t *testing.T) {
		audit := new(repoMocks.MockAuditRepository)
		svc := NewAuditService(audit)

		audit.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEvent) bool {
			return e.Actor == "system" && e.Action == "Created vendor" && !e.CreatedAt.IsZero() && e.ContractID == nil
		})).Return(nil)

		err := svc.Record(ctx, nil, "Created vendor", "", "Vendor v1")

		assert.NoError(t, err)
		audit.AssertExpectations(t)
	})

	t.Run("keeps supplied actor", func(t *testing.T) {
		audit := new(repoMocks.MockAuditRepository)
		svc := NewAuditService(audit)

		contractID := "c1"
		audit.On("Append", ctx, mock.MatchedBy(func(e *model.AuditEvent) bool {
			return e.Actor == "alice" && e.ContractID != nil && *e.ContractID == "c1"
		})).Return(nil)

		err := svc.Record(ctx, &contractID, "Updated contract", "alice", "")

		assert.NoError(t, err)
	})
}

func TestAuditService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults pagination", func(t *testing.T) {
		audit := new(repoMocks.MockAuditRepository)
		svc := NewAuditService(audit)

		audit.On("List", ctx, (*string)(nil), repository.PageQuery{Limit: 50, Offset: 0}).
			Return(&repository.PageResult[model.AuditEvent]{
				Items: []model.AuditEvent{{ID: 2}, {ID: 1}},
				Total: 2,
			}, nil)

		res, err := svc.List(ctx, nil, 0, -5)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, int64(2), res.Items[0].ID)
	})

	t.Run("passes contract filter through", func(t *testing.T) {
		audit := new(repoMocks.MockAuditRepository)
		svc := NewAuditService(audit)

		contractID := "c1"
		audit.On("List", ctx, &contractID, repository.PageQuery{Limit: 10, Offset: 20}).
			Return(&repository.PageResult[model.AuditEvent]{Items: []model.AuditEvent{}, Total: 0}, nil)

		res, err := svc.List(ctx, &contractID, 10, 20)

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
	})
}
