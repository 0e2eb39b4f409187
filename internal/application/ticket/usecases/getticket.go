package usecases

import (
	"context"

	"ticketapp/internal/application/ticket/dto"
	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/authorization"
	"ticketapp/internal/shared/errors"
	"ticketapp/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID  uint
	SubjectID string
	Roles     authorization.RoleSet
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	ticketCache ticket.TicketCache
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	ticketCache ticket.TicketCache,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		ticketCache: ticketCache,
		logger:      logger,
	}
}

// Execute loads one ticket, consulting the cache first. The ticket is
// fetched before the access check because the decision needs the owner;
// a ticket the caller may not see yields forbidden, not not-found.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	snapshot, err := uc.loadSnapshot(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanPerform(query.SubjectID, query.Roles, snapshot.CreatedBy, authorization.ActionReadOne) {
		uc.logger.Warnw("access denied for ticket read",
			"ticket_id", query.TicketID,
			"subject_id", query.SubjectID)
		return nil, errors.NewForbiddenError("not allowed to view this ticket")
	}

	result := dto.FromSnapshot(*snapshot)
	return &result, nil
}

func (uc *GetTicketUseCase) loadSnapshot(ctx context.Context, ticketID uint) (*ticket.Snapshot, error) {
	cached, err := uc.ticketCache.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Warnw("ticket cache read failed, falling back to store", "ticket_id", ticketID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	found, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	snapshot := found.Snapshot()
	if err := uc.ticketCache.SetByID(ctx, ticketID, &snapshot); err != nil {
		uc.logger.Warnw("failed to cache ticket", "ticket_id", ticketID, "error", err)
	}

	return &snapshot, nil
}
