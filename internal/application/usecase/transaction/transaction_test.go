package transaction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memTransactions struct {
	items []*entity.Transaction
}

func (m *memTransactions) Create(_ context.Context, t *entity.Transaction) error {
	m.items = append(m.items, t)
	return nil
}

func (m *memTransactions) CreateBatch(_ context.Context, ts []*entity.Transaction) error {
	m.items = append(m.items, ts...)
	return nil
}

func (m *memTransactions) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range m.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (m *memTransactions) FindByUser(_ context.Context, userID uuid.UUID, _ entity.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range m.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTransactions) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range m.items {
		if t.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memTransactions) WalletTotals(context.Context, uuid.UUID) ([]entity.WalletTotals, error) {
	return nil, nil
}

func (m *memTransactions) CategoryTotals(context.Context, uuid.UUID, time.Time, time.Time) ([]entity.CategoryAmount, error) {
	return nil, nil
}

var now = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults the date to now and trims text", func(t *testing.T) {
		repo := &memTransactions{}
		uc := NewCreateTransactionUseCase(repo, fixedClock{now})

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.RequireFromString("250.00"),
			Kind:        entity.TransactionKindExpense,
			Category:    "  Food ",
			Wallet:      entity.WalletCash,
			Description: " Groceries ",
		})
		require.NoError(t, err)

		assert.Equal(t, now, out.Transaction.Date)
		assert.Equal(t, "Food", out.Transaction.Category)
		assert.Equal(t, "Groceries", out.Transaction.Description)
		assert.Len(t, repo.items, 1)
	})

	t.Run("keeps an explicit date", func(t *testing.T) {
		repo := &memTransactions{}
		uc := NewCreateTransactionUseCase(repo, fixedClock{now})
		date := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Amount:   decimal.NewFromInt(10),
			Kind:     entity.TransactionKindIncome,
			Category: "Gift",
			Wallet:   entity.WalletOnline,
			Date:     &date,
		})
		require.NoError(t, err)
		assert.Equal(t, date, out.Transaction.Date)
	})

	invalid := []struct {
		name  string
		input CreateTransactionInput
		want  error
	}{
		{"zero amount", CreateTransactionInput{Amount: decimal.Zero, Kind: "expense", Wallet: "cash", Category: "Food"}, domainerror.ErrInvalidTransactionAmount},
		{"negative amount", CreateTransactionInput{Amount: decimal.NewFromInt(-5), Kind: "expense", Wallet: "cash", Category: "Food"}, domainerror.ErrInvalidTransactionAmount},
		{"sub-cent amount", CreateTransactionInput{Amount: decimal.RequireFromString("0.004"), Kind: "expense", Wallet: "cash", Category: "Food"}, domainerror.ErrInvalidTransactionAmount},
		{"unknown kind", CreateTransactionInput{Amount: decimal.NewFromInt(5), Kind: "refund", Wallet: "cash", Category: "Food"}, domainerror.ErrInvalidTransactionKind},
		{"unknown wallet", CreateTransactionInput{Amount: decimal.NewFromInt(5), Kind: "expense", Wallet: "card", Category: "Food"}, domainerror.ErrInvalidWallet},
		{"blank category", CreateTransactionInput{Amount: decimal.NewFromInt(5), Kind: "expense", Wallet: "cash", Category: "  "}, domainerror.ErrMissingCategory},
		{"long description", CreateTransactionInput{Amount: decimal.NewFromInt(5), Kind: "expense", Wallet: "cash", Category: "Food", Description: strings.Repeat("x", MaxDescriptionLength+1)}, domainerror.ErrDescriptionTooLong},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memTransactions{}
			uc := NewCreateTransactionUseCase(repo, fixedClock{now})

			_, err := uc.Execute(ctx, tc.input)

			assert.ErrorIs(t, err, tc.want)
			assert.True(t, domainerror.IsValidation(err))
			assert.Empty(t, repo.items)
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := &memTransactions{}
	item := entity.NewTransaction(owner, decimal.NewFromInt(5), entity.TransactionKindExpense, "Food", entity.WalletCash, now, "")
	require.NoError(t, repo.Create(ctx, item))
	uc := NewDeleteTransactionUseCase(repo)

	t.Run("foreign transaction looks missing", func(t *testing.T) {
		_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: item.ID, UserID: uuid.New()})

		assert.True(t, domainerror.IsNotFound(err))
		assert.Len(t, repo.items, 1)
	})

	t.Run("owner deletes", func(t *testing.T) {
		out, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: item.ID, UserID: owner})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Empty(t, repo.items)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: uuid.New(), UserID: owner})
		assert.True(t, domainerror.IsNotFound(err))
	})
}

func TestListTransactions_RejectsInvertedRange(t *testing.T) {
	uc := NewListTransactionsUseCase(&memTransactions{})
	from := now
	until := now.Add(-time.Hour)

	_, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID: uuid.New(),
		Filter: entity.TransactionFilter{From: &from, Until: &until},
	})

	assert.True(t, domainerror.IsValidation(err))
}
