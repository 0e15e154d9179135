// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a transaction to the ledger.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// CreateBatch appends several transactions in one database transaction.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range transactions {
			if err := tx.Create(model.TransactionFromEntity(t)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser lists a user's transactions, most recent first with the ID as tiebreak.
func (r *transactionRepository) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter entity.TransactionFilter,
) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID)

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.UTC())
	}
	if filter.Until != nil {
		query = query.Where("date < ?", filter.Until.UTC())
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.Wallet != nil {
		query = query.Where("wallet = ?", string(*filter.Wallet))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var transactionModels []model.TransactionModel
	if err := query.Order("date DESC").Order("id DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Delete soft-deletes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id).Error
}

// WalletTotals sums income and expense per wallet over the full history.
func (r *transactionRepository) WalletTotals(ctx context.Context, userID uuid.UUID) ([]entity.WalletTotals, error) {
	var rows []struct {
		Wallet  string
		Income  decimal.Decimal
		Expense decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(
			"wallet, "+
				"COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0) AS expense",
			string(entity.TransactionKindIncome), string(entity.TransactionKindExpense),
		).
		Where("user_id = ?", userID).
		Group("wallet").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]entity.WalletTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.WalletTotals{
			Wallet:  entity.Wallet(row.Wallet),
			Income:  row.Income.Round(2),
			Expense: row.Expense.Round(2),
		})
	}
	return totals, nil
}

// CategoryTotals sums expenses per category for dates in [from, until).
func (r *transactionRepository) CategoryTotals(
	ctx context.Context,
	userID uuid.UUID,
	from, until time.Time,
) ([]entity.CategoryAmount, error) {
	var rows []struct {
		Category string
		Total    decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Where("kind = ?", string(entity.TransactionKindExpense)).
		Where("date >= ? AND date < ?", from.UTC(), until.UTC()).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	amounts := make([]entity.CategoryAmount, 0, len(rows))
	for _, row := range rows {
		amounts = append(amounts, entity.CategoryAmount{
			Category: row.Category,
			Total:    row.Total.Round(2),
		})
	}
	return amounts, nil
}
