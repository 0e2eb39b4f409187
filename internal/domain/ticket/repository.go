package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	FindAll(ctx context.Context) ([]*Ticket, error)
	FindByCreator(ctx context.Context, createdBy string) ([]*Ticket, error)
}
