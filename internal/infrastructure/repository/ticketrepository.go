package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketapp/internal/domain/ticket"
	"ticketapp/internal/infrastructure/persistence/mappers"
	"ticketapp/internal/infrastructure/persistence/models"
	"ticketapp/internal/shared/db"
	apperrors "ticketapp/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) FindByCreator(ctx context.Context, createdBy string) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("created_by = ?", createdBy).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by creator: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) toDomainList(modelList []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
