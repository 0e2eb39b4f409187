package ticket

import (
	"fmt"
	"time"
)

// Ticket is a support request. The creator's subject id is set once at
// construction and never changes; it anchors ownership-based access control.
type Ticket struct {
	id          uint
	title       string
	description string
	status      string
	priority    string
	createdBy   string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description, status, priority, createdBy string) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(createdBy) == 0 {
		return nil, fmt.Errorf("creator subject id is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title, description, status, priority, createdBy string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(createdBy) == 0 {
		return nil, fmt.Errorf("creator subject id is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() string {
	return t.status
}

func (t *Ticket) Priority() string {
	return t.priority
}

func (t *Ticket) CreatedBy() string {
	return t.createdBy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails replaces every mutable field. The creator is deliberately
// not part of the signature; there is no way to change it after creation.
func (t *Ticket) UpdateDetails(title, description, status, priority string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	t.title = title
	t.description = description
	t.status = status
	t.priority = priority
	t.updatedAt = time.Now().UTC()
	return nil
}
