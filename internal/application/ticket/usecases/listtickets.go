package usecases

import (
	"context"

	"ticketapp/internal/application/ticket/dto"
	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/authorization"
	"ticketapp/internal/shared/errors"
	"ticketapp/internal/shared/logger"
)

type ListTicketsQuery struct {
	SubjectID string
	Roles     authorization.RoleSet
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket in the system. The role check runs before
// any data access; the full listing is not cached.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketDTO, error) {
	if !authorization.CanPerform(query.SubjectID, query.Roles, "", authorization.ActionReadAll) {
		uc.logger.Warnw("access denied for full ticket listing", "subject_id", query.SubjectID)
		return nil, errors.NewForbiddenError("not allowed to list all tickets")
	}

	tickets, err := uc.ticketRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, dto.FromSnapshot(t.Snapshot()))
	}
	return dtos, nil
}
