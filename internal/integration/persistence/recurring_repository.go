// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create creates a new subscription in the database.
func (r *recurringRepository) Create(ctx context.Context, recurring *entity.Recurring) error {
	return r.db.WithContext(ctx).Create(model.RecurringFromEntity(recurring)).Error
}

// FindByID retrieves a subscription by its ID.
func (r *recurringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recurring, error) {
	var recurringModel model.RecurringModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByUser lists subscriptions ordered by billing day.
func (r *recurringRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recurring, error) {
	var recurringModels []model.RecurringModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("billing_date ASC").
		Order("name ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Recurring, len(recurringModels))
	for i := range recurringModels {
		entries[i] = recurringModels[i].ToEntity()
	}
	return entries, nil
}

// Delete soft-deletes a subscription.
func (r *recurringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RecurringModel{}, "id = ?", id).Error
}
