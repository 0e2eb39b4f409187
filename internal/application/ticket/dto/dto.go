package dto

import (
	"time"

	"ticketapp/internal/domain/ticket"
)

// TicketDTO is the read model returned by query use cases.
type TicketDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromSnapshot builds a TicketDTO from a cached or freshly taken snapshot.
func FromSnapshot(s ticket.Snapshot) TicketDTO {
	return TicketDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Status:      s.Status,
		Priority:    s.Priority,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromSnapshots maps a snapshot list into DTOs, never returning nil.
func FromSnapshots(list []ticket.Snapshot) []TicketDTO {
	dtos := make([]TicketDTO, 0, len(list))
	for _, s := range list {
		dtos = append(dtos, FromSnapshot(s))
	}
	return dtos
}
