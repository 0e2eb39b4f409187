package cache

import (
	"context"
	"sync"
	"time"

	"ticketapp/internal/domain/ticket"
)

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e memoryEntry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryTicketCache is an in-process ticket cache backed by two maps, one
// per keyspace. Evictions take effect before the call returns, so a lookup
// issued after an eviction never sees the evicted value.
type MemoryTicketCache struct {
	mu      sync.RWMutex
	byID    map[uint]memoryEntry[ticket.Snapshot]
	byOwner map[string]memoryEntry[[]ticket.Snapshot]
	ttl     time.Duration
}

// NewMemoryTicketCache creates an in-memory cache. A zero ttl disables
// expiry; entries then live until evicted.
func NewMemoryTicketCache(ttl time.Duration) *MemoryTicketCache {
	return &MemoryTicketCache{
		byID:    make(map[uint]memoryEntry[ticket.Snapshot]),
		byOwner: make(map[string]memoryEntry[[]ticket.Snapshot]),
		ttl:     ttl,
	}
}

func (c *MemoryTicketCache) expiry() time.Time {
	if c.ttl == 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}

func (c *MemoryTicketCache) GetByID(_ context.Context, ticketID uint) (*ticket.Snapshot, error) {
	c.mu.RLock()
	entry, ok := c.byID[ticketID]
	c.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return nil, nil
	}
	s := entry.value
	return &s, nil
}

func (c *MemoryTicketCache) SetByID(_ context.Context, ticketID uint, s *ticket.Snapshot) error {
	if s == nil {
		return nil
	}
	c.mu.Lock()
	c.byID[ticketID] = memoryEntry[ticket.Snapshot]{value: *s, expiresAt: c.expiry()}
	c.mu.Unlock()
	return nil
}

func (c *MemoryTicketCache) EvictByID(_ context.Context, ticketID uint) error {
	c.mu.Lock()
	delete(c.byID, ticketID)
	c.mu.Unlock()
	return nil
}

func (c *MemoryTicketCache) GetByCreator(_ context.Context, createdBy string) ([]ticket.Snapshot, error) {
	c.mu.RLock()
	entry, ok := c.byOwner[createdBy]
	c.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return nil, nil
	}

	// Copy so callers cannot mutate the cached list.
	list := make([]ticket.Snapshot, len(entry.value))
	copy(list, entry.value)
	return list, nil
}

func (c *MemoryTicketCache) SetByCreator(_ context.Context, createdBy string, list []ticket.Snapshot) error {
	stored := make([]ticket.Snapshot, len(list))
	copy(stored, list)

	c.mu.Lock()
	c.byOwner[createdBy] = memoryEntry[[]ticket.Snapshot]{value: stored, expiresAt: c.expiry()}
	c.mu.Unlock()
	return nil
}

func (c *MemoryTicketCache) EvictByCreator(_ context.Context, createdBy string) error {
	c.mu.Lock()
	delete(c.byOwner, createdBy)
	c.mu.Unlock()
	return nil
}
