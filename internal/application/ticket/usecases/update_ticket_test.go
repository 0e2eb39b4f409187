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

func TestUpdateTicketUseCase_Execute_OwnerUpdates(t *testing.T) {
	var updatedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id, "user789"), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updatedTicket = tkt
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

	uc := NewUpdateTicketUseCase(mockRepo, mockCache, newTestLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    1,
		Title:       "Updated title",
		Description: "updated",
		Status:      "CLOSED",
		Priority:    "LOW",
		SubjectID:   "user789",
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated title", result.Title)
	assert.Equal(t, "user789", result.CreatedBy)

	require.NotNil(t, updatedTicket)
	assert.Equal(t, "user789", updatedTicket.CreatedBy(), "update must preserve the original owner")
	assert.Equal(t, []uint{1}, evictedIDs)
	assert.Equal(t, []string{"user789"}, evictedOwners)
}

func TestUpdateTicketUseCase_Execute_AdminUpdatesOthersTicket(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id, "user456"), nil
		},
	}

	evictedOwners := []string{}
	mockCache := &mockTicketCache{
		EvictByCreatorFunc: func(ctx context.Context, createdBy string) error {
			evictedOwners = append(evictedOwners, createdBy)
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, mockCache, newTestLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Title:     "Admin edit",
		Status:    "OPEN",
		Priority:  "HIGH",
		SubjectID: "admin1",
		Roles:     authorization.NewRoleSet("ADMIN"),
	})

	require.NoError(t, err)
	assert.Equal(t, "user456", result.CreatedBy, "owner stays the original creator, not the editor")
	assert.Equal(t, []string{"user456"}, evictedOwners, "the owner's list is evicted, not the editor's")
}

func TestUpdateTicketUseCase_Execute_NonOwnerForbidden(t *testing.T) {
	updateCalled := false
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id, "user456"), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}

	evictCalled := false
	mockCache := &mockTicketCache{
		EvictByIDFunc: func(ctx context.Context, id uint) error {
			evictCalled = true
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, mockCache, newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Title:     "Should not apply",
		SubjectID: "user789",
		Roles:     authorization.NewRoleSet("USER"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, updateCalled)
	assert.False(t, evictCalled, "denied update must not evict cache entries")
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockTicketCache{}, newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  999,
		Title:     "x",
		SubjectID: "admin1",
		Roles:     authorization.NewRoleSet("ADMIN"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_ValidationFailureSkipsStore(t *testing.T) {
	updateCalled := false
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id, "user789"), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockTicketCache{}, newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Title:     "",
		SubjectID: "user789",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, updateCalled)
}
