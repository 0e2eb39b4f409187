package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/authorization"
	apperrors "ticketapp/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_AdminDeletes(t *testing.T) {
	var deletedID uint
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id, "user456"), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	evictedIDs := []uint{}
	evictedOwners := []string{}
	mockCache := &mockTicketCache{
		EvictByIDFunc: func(ctx context.Context, id uint) error {
			evictedIDs = append(evictedIDs, id)
			return nil
		},
		EvictByCreatorFunc: func(ctx context.Context, createdBy string) error {
			evictedOwners = append(evictedOwners, createdBy)
			return nil
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, mockCache, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  1,
		SubjectID: "admin1",
		Roles:     authorization.NewRoleSet("ADMIN"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), deletedID)
	assert.Equal(t, []uint{1}, evictedIDs)
	assert.Equal(t, []string{"user456"}, evictedOwners)
}

func TestDeleteTicketUseCase_Execute_OwnershipDoesNotSuffice(t *testing.T) {
	fetchCalled := false
	deleteCalled := false
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			fetchCalled = true
			return reconstructTestTicket(t, id, "user789"), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleteCalled = true
			return nil
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, &mockTicketCache{}, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  1,
		SubjectID: "user789",
		Roles:     authorization.NewRoleSet("USER"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err), "the owner without ADMIN must not delete")
	assert.False(t, fetchCalled, "role check rejects before the store is touched")
	assert.False(t, deleteCalled)
}

func TestDeleteTicketUseCase_Execute_SupportCannotDelete(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id, "user456"), nil
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, &mockTicketCache{}, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  1,
		SubjectID: "support1",
		Roles:     authorization.NewRoleSet("SUPPORT"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewDeleteTicketUseCase(mockRepo, &mockTicketCache{}, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  999,
		SubjectID: "admin1",
		Roles:     authorization.NewRoleSet("ADMIN"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
