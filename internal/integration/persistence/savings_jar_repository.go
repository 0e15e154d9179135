// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// savingsJarRepository implements the adapter.SavingsJarRepository interface.
type savingsJarRepository struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewSavingsJarRepository creates a new savings jar repository instance.
// The clock stamps updated_at on transfers.
func NewSavingsJarRepository(db *gorm.DB, clock adapter.Clock) adapter.SavingsJarRepository {
	return &savingsJarRepository{
		db:    db,
		clock: clock,
	}
}

// Create creates a new jar in the database.
func (r *savingsJarRepository) Create(ctx context.Context, jar *entity.SavingsJar) error {
	return r.db.WithContext(ctx).Create(model.SavingsJarFromEntity(jar)).Error
}

// FindByID retrieves a jar by its ID.
func (r *savingsJarRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsJar, error) {
	return findJar(r.db.WithContext(ctx), id)
}

// FindByUser retrieves all jars of a user, oldest first.
func (r *savingsJarRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsJar, error) {
	var jarModels []model.SavingsJarModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&jarModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jars := make([]*entity.SavingsJar, len(jarModels))
	for i := range jarModels {
		jars[i] = jarModels[i].ToEntity()
	}
	return jars, nil
}

// Transfer applies the jar delta and appends the mirrored transaction atomically.
// A failure in either write rolls both back and is reported as ErrJarTransferIncomplete.
func (r *savingsJarRepository) Transfer(
	ctx context.Context,
	jarID uuid.UUID,
	delta decimal.Decimal,
	mirror *entity.Transaction,
) (*entity.SavingsJar, error) {
	var updated *entity.SavingsJar

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.SavingsJarModel{}).
			Where("id = ?", jarID).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount + ?", delta),
				"updated_at":     r.clock.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("%w: %w", domainerror.ErrJarTransferIncomplete, result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrJarNotFound
		}

		if err := tx.Create(model.TransactionFromEntity(mirror)).Error; err != nil {
			return fmt.Errorf("%w: %w", domainerror.ErrJarTransferIncomplete, err)
		}

		jar, err := findJar(tx, jarID)
		if err != nil {
			return err
		}
		updated = jar
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.CurrentAmount = updated.CurrentAmount.Round(2)
	return updated, nil
}

// Delete soft-deletes a jar. Mirrored transactions are left untouched.
func (r *savingsJarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SavingsJarModel{}, "id = ?", id).Error
}

func findJar(db *gorm.DB, id uuid.UUID) (*entity.SavingsJar, error) {
	var jarModel model.SavingsJarModel
	result := db.Where("id = ?", id).First(&jarModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrJarNotFound
		}
		return nil, result.Error
	}
	return jarModel.ToEntity(), nil
}
