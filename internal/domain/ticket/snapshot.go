package ticket

import "time"

// Snapshot is the serializable representation of a ticket used by the cache
// and read paths. Cached entries are snapshots, never live entities, so a
// cached value can cross process boundaries and is immutable to callers.
type Snapshot struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Snapshot returns a point-in-time copy of the ticket's state.
func (t *Ticket) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.id,
		Title:       t.title,
		Description: t.description,
		Status:      t.status,
		Priority:    t.priority,
		CreatedBy:   t.createdBy,
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
	}
}

// FromSnapshot rebuilds a ticket entity from a snapshot.
func FromSnapshot(s Snapshot) (*Ticket, error) {
	return ReconstructTicket(
		s.ID,
		s.Title,
		s.Description,
		s.Status,
		s.Priority,
		s.CreatedBy,
		s.CreatedAt,
		s.UpdatedAt,
	)
}
