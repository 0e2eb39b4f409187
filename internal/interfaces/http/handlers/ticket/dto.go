package ticket

import (
	"ticketapp/internal/application/ticket/usecases"
	"ticketapp/internal/shared/authorization"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Status      string `json:"status" binding:"max=50"`
	Priority    string `json:"priority" binding:"max=50"`
}

func (r *CreateTicketRequest) ToCommand(subjectID string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		SubjectID:   subjectID,
	}
}

type UpdateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Status      string `json:"status" binding:"max=50"`
	Priority    string `json:"priority" binding:"max=50"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, subjectID string, roles authorization.RoleSet) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		SubjectID:   subjectID,
		Roles:       roles,
	}
}
