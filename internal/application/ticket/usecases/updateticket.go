package usecases

import (
	"context"

	"ticketapp/internal/application/ticket/dto"
	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/authorization"
	"ticketapp/internal/shared/errors"
	"ticketapp/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Status      string
	Priority    string
	SubjectID   string
	Roles       authorization.RoleSet
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	ticketCache ticket.TicketCache
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	ticketCache ticket.TicketCache,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		ticketCache: ticketCache,
		logger:      logger,
	}
}

// Execute replaces a ticket's mutable fields. The current ticket is
// fetched first so the decision can compare owners; the creator is never
// taken from the request. Both cache keyspaces for the ticket are evicted
// before returning.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	current, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanPerform(cmd.SubjectID, cmd.Roles, current.CreatedBy(), authorization.ActionUpdate) {
		uc.logger.Warnw("access denied for ticket update",
			"ticket_id", cmd.TicketID,
			"subject_id", cmd.SubjectID)
		return nil, errors.NewForbiddenError("not allowed to update this ticket")
	}

	if err := current.UpdateDetails(cmd.Title, cmd.Description, cmd.Status, cmd.Priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, current); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.evict(ctx, cmd.TicketID, current.CreatedBy())

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID, "subject_id", cmd.SubjectID)

	result := dto.FromSnapshot(current.Snapshot())
	return &result, nil
}

// evict drops both cache entries touched by the mutation. The next read
// repopulates from the store.
func (uc *UpdateTicketUseCase) evict(ctx context.Context, ticketID uint, createdBy string) {
	if err := uc.ticketCache.EvictByID(ctx, ticketID); err != nil {
		uc.logger.Warnw("failed to evict ticket from cache", "ticket_id", ticketID, "error", err)
	}
	if err := uc.ticketCache.EvictByCreator(ctx, createdBy); err != nil {
		uc.logger.Warnw("failed to evict creator ticket list from cache", "created_by", createdBy, "error", err)
	}
}
