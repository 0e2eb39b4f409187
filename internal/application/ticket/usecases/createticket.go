package usecases

import (
	"context"
	"time"

	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/errors"
	"ticketapp/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Status      string
	Priority    string
	SubjectID   string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	ticketCache ticket.TicketCache
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	ticketCache ticket.TicketCache,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		ticketCache: ticketCache,
		logger:      logger,
	}
}

// Execute persists a new ticket owned by the calling subject. Any
// authenticated caller may create; no role is required.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "subject_id", cmd.SubjectID)

	if cmd.SubjectID == "" {
		return nil, errors.NewUnauthorizedError("missing caller identity")
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.Status,
		cmd.Priority,
		cmd.SubjectID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// The creator's cached list no longer reflects the store.
	if err := uc.ticketCache.EvictByCreator(ctx, cmd.SubjectID); err != nil {
		uc.logger.Warnw("failed to evict creator ticket list from cache", "subject_id", cmd.SubjectID, "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
