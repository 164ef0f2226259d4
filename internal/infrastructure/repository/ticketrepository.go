package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/domain/ticket"
	vo "inkwell/internal/domain/ticket/valueobjects"
	"inkwell/internal/infrastructure/persistence/mappers"
	"inkwell/internal/infrastructure/persistence/models"
	"inkwell/internal/shared/db"
	apperrors "inkwell/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// UpdateForwardingStatus overwrites the forwarding status field.
// Repeated calls simply overwrite the value (last write wins).
func (r *TicketRepository) UpdateForwardingStatus(ctx context.Context, id uint, status vo.ForwardingStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("forwarding_status", status.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update forwarding status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

var _ ticket.TicketRepository = (*TicketRepository)(nil)
