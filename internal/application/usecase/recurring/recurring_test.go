package recurring

import (
	"context"
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

type memRecurring struct {
	items []*entity.Recurring
}

func (m *memRecurring) Create(_ context.Context, r *entity.Recurring) error {
	m.items = append(m.items, r)
	return nil
}

func (m *memRecurring) FindByID(_ context.Context, id uuid.UUID) (*entity.Recurring, error) {
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainerror.ErrRecurringNotFound
}

func (m *memRecurring) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Recurring, error) {
	var out []*entity.Recurring
	for _, r := range m.items {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecurring) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range m.items {
		if r.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestCreateRecurring(t *testing.T) {
	ctx := context.Background()
	uc := NewCreateRecurringUseCase(&memRecurring{})

	out, err := uc.Execute(ctx, CreateRecurringInput{
		UserID:      uuid.New(),
		Name:        "Netflix",
		Amount:      decimal.NewFromInt(649),
		Kind:        entity.TransactionKindExpense,
		BillingDate: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRecurringCategory, out.Recurring.Category)

	for _, day := range []int{0, 32} {
		_, err := uc.Execute(ctx, CreateRecurringInput{
			UserID:      uuid.New(),
			Name:        "Gym",
			Amount:      decimal.NewFromInt(1),
			Kind:        entity.TransactionKindExpense,
			BillingDate: day,
		})
		assert.ErrorIs(t, err, domainerror.ErrInvalidBillingDate, "day %d", day)
	}

	_, err = uc.Execute(ctx, CreateRecurringInput{UserID: uuid.New(), Name: "Gym", Amount: decimal.NewFromInt(1), Kind: "monthly", BillingDate: 1})
	assert.True(t, domainerror.IsValidation(err))

	_, err = uc.Execute(ctx, CreateRecurringInput{UserID: uuid.New(), Name: "Gym", Amount: decimal.RequireFromString("9.999"), Kind: entity.TransactionKindExpense, BillingDate: 1})
	assert.ErrorIs(t, err, domainerror.ErrInvalidRecurringAmount)
}

func TestListRecurring_NextBillingDateAndTotal(t *testing.T) {
	userID := uuid.New()
	repo := &memRecurring{items: []*entity.Recurring{
		entity.NewRecurring(userID, "Rent", decimal.NewFromInt(15000), entity.TransactionKindExpense, 1, "Housing"),
		entity.NewRecurring(userID, "Netflix", decimal.NewFromInt(649), entity.TransactionKindExpense, 15, ""),
		entity.NewRecurring(userID, "Salary", decimal.NewFromInt(80000), entity.TransactionKindIncome, 31, "Salary"),
	}}
	clock := fixedClock{time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)}

	out, err := NewListRecurringUseCase(repo, clock, time.UTC).Execute(context.Background(), ListRecurringInput{UserID: userID})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), out.Items[0].NextBillingDate)
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), out.Items[1].NextBillingDate)
	// Day 31 falls on the last day of February.
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), out.Items[2].NextBillingDate)
	assert.Equal(t, "15649", out.MonthlyTotal.String())
}

func TestDeleteRecurring_Ownership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	entry := entity.NewRecurring(owner, "Gym", decimal.NewFromInt(999), entity.TransactionKindExpense, 5, "Health")
	repo := &memRecurring{items: []*entity.Recurring{entry}}
	uc := NewDeleteRecurringUseCase(repo)

	_, err := uc.Execute(ctx, DeleteRecurringInput{RecurringID: entry.ID, UserID: uuid.New()})
	assert.True(t, domainerror.IsNotFound(err))
	assert.Len(t, repo.items, 1)

	out, err := uc.Execute(ctx, DeleteRecurringInput{RecurringID: entry.ID, UserID: owner})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Empty(t, repo.items)
}
