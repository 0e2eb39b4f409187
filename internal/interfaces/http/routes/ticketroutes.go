package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketapp/internal/interfaces/http/handlers/ticket"
	"ticketapp/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/my", config.TicketHandler.ListMyTickets)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
