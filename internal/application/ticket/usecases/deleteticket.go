package usecases

import (
	"context"

	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/authorization"
	"ticketapp/internal/shared/errors"
	"ticketapp/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	SubjectID string
	Roles     authorization.RoleSet
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	ticketCache ticket.TicketCache
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	ticketCache ticket.TicketCache,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		ticketCache: ticketCache,
		logger:      logger,
	}
}

// Execute removes a ticket. Deletion is role-gated and the decision does
// not depend on the ticket, so the check runs before any data access;
// ownership is never enough. The ticket is then fetched so a missing id
// reads as not-found and the owner's cached list can be evicted.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !authorization.CanPerform(cmd.SubjectID, cmd.Roles, "", authorization.ActionDelete) {
		uc.logger.Warnw("access denied for ticket delete",
			"ticket_id", cmd.TicketID,
			"subject_id", cmd.SubjectID)
		return errors.NewForbiddenError("not allowed to delete this ticket")
	}

	current, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if err := uc.ticketCache.EvictByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to evict ticket from cache", "ticket_id", cmd.TicketID, "error", err)
	}
	if err := uc.ticketCache.EvictByCreator(ctx, current.CreatedBy()); err != nil {
		uc.logger.Warnw("failed to evict creator ticket list from cache", "created_by", current.CreatedBy(), "error", err)
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID, "subject_id", cmd.SubjectID)
	return nil
}
