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

func TestListTicketsUseCase_Execute_RequiresElevatedRole(t *testing.T) {
	tests := []struct {
		name      string
		roles     authorization.RoleSet
		forbidden bool
	}{
		{name: "admin can list all", roles: authorization.NewRoleSet("ADMIN")},
		{name: "support can list all", roles: authorization.NewRoleSet("SUPPORT")},
		{name: "plain user is denied", roles: authorization.NewRoleSet("USER"), forbidden: true},
		{name: "no roles is denied", roles: authorization.NewRoleSet(), forbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoCalled := false
			mockRepo := &mockTicketRepository{
				FindAllFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
					repoCalled = true
					return []*ticket.Ticket{
						reconstructTestTicket(t, 1, "user789"),
						reconstructTestTicket(t, 2, "user456"),
					}, nil
				},
			}

			uc := NewListTicketsUseCase(mockRepo, newTestLogger())

			result, err := uc.Execute(context.Background(), ListTicketsQuery{
				SubjectID: "caller",
				Roles:     tt.roles,
			})

			if tt.forbidden {
				require.Error(t, err)
				assert.True(t, apperrors.IsForbiddenError(err))
				assert.False(t, repoCalled, "denied callers must not reach the store")
				return
			}

			require.NoError(t, err)
			assert.Len(t, result, 2)
		})
	}
}

func TestListTicketsUseCase_Execute_EmptyStoreYieldsEmptyList(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindAllFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return nil, nil
		},
	}

	uc := NewListTicketsUseCase(mockRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		SubjectID: "admin1",
		Roles:     authorization.NewRoleSet("ADMIN"),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result)
}
