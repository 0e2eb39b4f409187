package ticket

import "context"

// TicketCache memoizes single-ticket and per-creator-list lookups in two
// independent keyspaces. A (nil, nil) return from a getter is a miss.
//
// Callers treat cache errors as misses on the read path and log-only on the
// write path; the cache never decides request outcomes. Evictions are
// synchronous: once an eviction for an id returns, no later lookup for that
// id may observe the pre-eviction value.
type TicketCache interface {
	GetByID(ctx context.Context, ticketID uint) (*Snapshot, error)
	SetByID(ctx context.Context, ticketID uint, s *Snapshot) error
	EvictByID(ctx context.Context, ticketID uint) error

	GetByCreator(ctx context.Context, createdBy string) ([]Snapshot, error)
	SetByCreator(ctx context.Context, createdBy string, list []Snapshot) error
	EvictByCreator(ctx context.Context, createdBy string) error
}
