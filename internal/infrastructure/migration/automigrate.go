package migration

import (
	"ticketapp/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
	}
}
