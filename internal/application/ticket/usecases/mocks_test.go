package usecases

import (
	"context"
	"io"
	"log/slog"

	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc        func(ctx context.Context, ticketID uint) error
	FindByIDFunc      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	FindAllFunc       func(ctx context.Context) ([]*ticket.Ticket, error)
	FindByCreatorFunc func(ctx context.Context, createdBy string) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByCreator(ctx context.Context, createdBy string) ([]*ticket.Ticket, error) {
	if m.FindByCreatorFunc != nil {
		return m.FindByCreatorFunc(ctx, createdBy)
	}
	return nil, nil
}

type mockTicketCache struct {
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Snapshot, error)
	SetByIDFunc        func(ctx context.Context, ticketID uint, s *ticket.Snapshot) error
	EvictByIDFunc      func(ctx context.Context, ticketID uint) error
	GetByCreatorFunc   func(ctx context.Context, createdBy string) ([]ticket.Snapshot, error)
	SetByCreatorFunc   func(ctx context.Context, createdBy string, list []ticket.Snapshot) error
	EvictByCreatorFunc func(ctx context.Context, createdBy string) error
}

func (m *mockTicketCache) GetByID(ctx context.Context, ticketID uint) (*ticket.Snapshot, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketCache) SetByID(ctx context.Context, ticketID uint, s *ticket.Snapshot) error {
	if m.SetByIDFunc != nil {
		return m.SetByIDFunc(ctx, ticketID, s)
	}
	return nil
}

func (m *mockTicketCache) EvictByID(ctx context.Context, ticketID uint) error {
	if m.EvictByIDFunc != nil {
		return m.EvictByIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketCache) GetByCreator(ctx context.Context, createdBy string) ([]ticket.Snapshot, error) {
	if m.GetByCreatorFunc != nil {
		return m.GetByCreatorFunc(ctx, createdBy)
	}
	return nil, nil
}

func (m *mockTicketCache) SetByCreator(ctx context.Context, createdBy string, list []ticket.Snapshot) error {
	if m.SetByCreatorFunc != nil {
		return m.SetByCreatorFunc(ctx, createdBy, list)
	}
	return nil
}

func (m *mockTicketCache) EvictByCreator(ctx context.Context, createdBy string) error {
	if m.EvictByCreatorFunc != nil {
		return m.EvictByCreatorFunc(ctx, createdBy)
	}
	return nil
}

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
