package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketapp/internal/application/ticket/usecases"
	"ticketapp/internal/interfaces/http/middleware"
	"ticketapp/internal/shared/logger"
	"ticketapp/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	listMyTicketsUC usecases.ListMyTicketsExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listMyTicketsUC usecases.ListMyTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		listMyTicketsUC: listMyTicketsUC,
		updateTicketUC:  updateTicketUC,
		deleteTicketUC:  deleteTicketUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	subjectID, _, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing caller identity")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(subjectID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	subjectID, roles, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing caller identity")
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:  ticketID,
		SubjectID: subjectID,
		Roles:     roles,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	subjectID, roles, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing caller identity")
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		SubjectID: subjectID,
		Roles:     roles,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyTickets handles GET /api/tickets/my
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	subjectID, _, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing caller identity")
		return
	}

	result, err := h.listMyTicketsUC.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		SubjectID: subjectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	subjectID, roles, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing caller identity")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, subjectID, roles))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, ok := h.ticketIDParam(c)
	if !ok {
		return
	}

	subjectID, roles, ok := middleware.Identity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing caller identity")
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		SubjectID: subjectID,
		Roles:     roles,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TicketHandler) ticketIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket id")
		return 0, false
	}
	return uint(id), true
}
