package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketapp/internal/domain/ticket"
	apperrors "ticketapp/internal/shared/errors"
)

func TestListMyTicketsUseCase_Execute_ScopedToCaller(t *testing.T) {
	var requestedCreator string
	mockRepo := &mockTicketRepository{
		FindByCreatorFunc: func(ctx context.Context, createdBy string) ([]*ticket.Ticket, error) {
			requestedCreator = createdBy
			return []*ticket.Ticket{reconstructTestTicket(t, 1, createdBy)}, nil
		},
	}

	var cachedOwner string
	var cachedList []ticket.Snapshot
	mockCache := &mockTicketCache{
		SetByCreatorFunc: func(ctx context.Context, createdBy string, list []ticket.Snapshot) error {
			cachedOwner = createdBy
			cachedList = list
			return nil
		},
	}

	uc := NewListMyTicketsUseCase(mockRepo, mockCache, newTestLogger())

	result, err := uc.Execute(context.Background(), ListMyTicketsQuery{SubjectID: "user789"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "user789", requestedCreator, "query must be scoped to the caller")
	assert.Equal(t, "user789", cachedOwner)
	assert.Len(t, cachedList, 1)
}

func TestListMyTicketsUseCase_Execute_CacheHitSkipsStore(t *testing.T) {
	repoCalled := false
	mockRepo := &mockTicketRepository{
		FindByCreatorFunc: func(ctx context.Context, createdBy string) ([]*ticket.Ticket, error) {
			repoCalled = true
			return nil, nil
		},
	}
	mockCache := &mockTicketCache{
		GetByCreatorFunc: func(ctx context.Context, createdBy string) ([]ticket.Snapshot, error) {
			return []ticket.Snapshot{reconstructTestTicket(t, 3, createdBy).Snapshot()}, nil
		},
	}

	uc := NewListMyTicketsUseCase(mockRepo, mockCache, newTestLogger())

	result, err := uc.Execute(context.Background(), ListMyTicketsQuery{SubjectID: "user789"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, uint(3), result[0].ID)
	assert.False(t, repoCalled)
}

func TestListMyTicketsUseCase_Execute_CachedEmptyListIsServed(t *testing.T) {
	repoCalled := false
	mockRepo := &mockTicketRepository{
		FindByCreatorFunc: func(ctx context.Context, createdBy string) ([]*ticket.Ticket, error) {
			repoCalled = true
			return nil, nil
		},
	}
	mockCache := &mockTicketCache{
		GetByCreatorFunc: func(ctx context.Context, createdBy string) ([]ticket.Snapshot, error) {
			return []ticket.Snapshot{}, nil
		},
	}

	uc := NewListMyTicketsUseCase(mockRepo, mockCache, newTestLogger())

	result, err := uc.Execute(context.Background(), ListMyTicketsQuery{SubjectID: "user789"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result)
	assert.False(t, repoCalled, "a cached empty list is a hit, not a miss")
}

func TestListMyTicketsUseCase_Execute_NoTicketsCachesEmptyList(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByCreatorFunc: func(ctx context.Context, createdBy string) ([]*ticket.Ticket, error) {
			return nil, nil
		},
	}

	var cachedList []ticket.Snapshot
	cacheWritten := false
	mockCache := &mockTicketCache{
		SetByCreatorFunc: func(ctx context.Context, createdBy string, list []ticket.Snapshot) error {
			cacheWritten = true
			cachedList = list
			return nil
		},
	}

	uc := NewListMyTicketsUseCase(mockRepo, mockCache, newTestLogger())

	result, err := uc.Execute(context.Background(), ListMyTicketsQuery{SubjectID: "user789"})

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.True(t, cacheWritten)
	assert.Empty(t, cachedList)
}

func TestListMyTicketsUseCase_Execute_MissingIdentity(t *testing.T) {
	uc := NewListMyTicketsUseCase(&mockTicketRepository{}, &mockTicketCache{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListMyTicketsQuery{SubjectID: ""})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}
