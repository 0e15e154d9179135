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

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).Create(model.DebtFromEntity(debt)).Error
}

// CreateBatch creates several debts in one database transaction.
func (r *debtRepository) CreateBatch(ctx context.Context, debts []*entity.Debt) error {
	debtModels := make([]*model.DebtModel, len(debts))
	for i, d := range debts {
		debtModels[i] = model.DebtFromEntity(d)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&debtModels).Error
	})
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUser lists debts with pending ones first, most recent first within each status.
func (r *debtRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("status ASC"). // "pending" sorts before "settled"
		Order("date DESC").
		Order("id DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts, nil
}

// UpdateStatus persists the debt status.
func (r *debtRepository) UpdateStatus(ctx context.Context, debt *entity.Debt) error {
	return r.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Where("id = ?", debt.ID).
		Update("status", string(debt.Status)).Error
}

// Delete soft-deletes a debt.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id).Error
}
