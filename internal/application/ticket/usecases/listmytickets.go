package usecases

import (
	"context"

	"ticketapp/internal/application/ticket/dto"
	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/errors"
	"ticketapp/internal/shared/logger"
)

type ListMyTicketsQuery struct {
	SubjectID string
}

type ListMyTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	ticketCache ticket.TicketCache
	logger      logger.Interface
}

func NewListMyTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	ticketCache ticket.TicketCache,
	logger logger.Interface,
) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo:  ticketRepo,
		ticketCache: ticketCache,
		logger:      logger,
	}
}

// Execute returns the caller's own tickets. Scoping to the caller's
// subject id is the access control; no role is required. Results are
// cached per creator, and an empty list is a cacheable answer.
func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) ([]dto.TicketDTO, error) {
	if query.SubjectID == "" {
		return nil, errors.NewUnauthorizedError("missing caller identity")
	}

	cached, err := uc.ticketCache.GetByCreator(ctx, query.SubjectID)
	if err != nil {
		uc.logger.Warnw("creator ticket list cache read failed, falling back to store",
			"subject_id", query.SubjectID, "error", err)
	} else if cached != nil {
		return dto.FromSnapshots(cached), nil
	}

	tickets, err := uc.ticketRepo.FindByCreator(ctx, query.SubjectID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets by creator", "subject_id", query.SubjectID, "error", err)
		return nil, err
	}

	snapshots := make([]ticket.Snapshot, 0, len(tickets))
	for _, t := range tickets {
		snapshots = append(snapshots, t.Snapshot())
	}

	if err := uc.ticketCache.SetByCreator(ctx, query.SubjectID, snapshots); err != nil {
		uc.logger.Warnw("failed to cache creator ticket list", "subject_id", query.SubjectID, "error", err)
	}

	return dto.FromSnapshots(snapshots), nil
}
