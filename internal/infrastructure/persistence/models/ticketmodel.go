package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:50;index"`
	Priority    string `gorm:"size:50;index"`
	CreatedBy   string `gorm:"size:255;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// Ownership checks are handled in application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
