package budget

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

type memBudgets struct {
	items   []*entity.Budget
	updates int
}

func (m *memBudgets) Create(_ context.Context, b *entity.Budget) error {
	m.items = append(m.items, b)
	return nil
}

func (m *memBudgets) Update(context.Context, *entity.Budget) error {
	m.updates++
	return nil
}

func (m *memBudgets) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range m.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// spendingLedger answers CategoryTotals with a fixed result and records the window asked for.
type spendingLedger struct {
	totals      []entity.CategoryAmount
	from, until time.Time
}

func (s *spendingLedger) Create(context.Context, *entity.Transaction) error        { return nil }
func (s *spendingLedger) CreateBatch(context.Context, []*entity.Transaction) error { return nil }
func (s *spendingLedger) Delete(context.Context, uuid.UUID) error                  { return nil }

func (s *spendingLedger) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *spendingLedger) FindByUser(context.Context, uuid.UUID, entity.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (s *spendingLedger) WalletTotals(context.Context, uuid.UUID) ([]entity.WalletTotals, error) {
	return nil, nil
}

func (s *spendingLedger) CategoryTotals(_ context.Context, _ uuid.UUID, from, until time.Time) ([]entity.CategoryAmount, error) {
	s.from, s.until = from, until
	return s.totals, nil
}

func TestUpsertBudget(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := &memBudgets{}
	stamp := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	uc := NewUpsertBudgetUseCase(repo, fixedClock{stamp})

	first, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, Category: "Food", Limit: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, stamp, first.Budget.CreatedAt)

	second, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, Category: " Food ", Limit: decimal.NewFromInt(6000)})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Budget.ID, second.Budget.ID)
	assert.Equal(t, "6000", second.Budget.Limit.String())
	assert.Equal(t, stamp, second.Budget.UpdatedAt)
	assert.Len(t, repo.items, 1)
	assert.Equal(t, 1, repo.updates)

	t.Run("validation", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, Category: "", Limit: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domainerror.ErrMissingBudgetCategory)

		_, err = uc.Execute(ctx, UpsertBudgetInput{UserID: userID, Category: "Food", Limit: decimal.Zero})
		assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetLimit)

		_, err = uc.Execute(ctx, UpsertBudgetInput{UserID: userID, Category: "Food", Limit: decimal.RequireFromString("99.999")})
		assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetLimit)
	})
}

func TestListBudgets_SpentFromCurrentMonth(t *testing.T) {
	userID := uuid.New()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	budgets := &memBudgets{items: []*entity.Budget{
		entity.NewBudget(userID, "Food", decimal.NewFromInt(5000)),
		entity.NewBudget(userID, "Travel", decimal.NewFromInt(2000)),
	}}
	ledger := &spendingLedger{totals: []entity.CategoryAmount{
		{Category: "Food", Total: decimal.RequireFromString("5200")},
		{Category: "Shopping", Total: decimal.NewFromInt(900)},
	}}
	// 20:00 UTC on the last day of February is already March in Kolkata.
	clock := fixedClock{time.Date(2024, time.February, 29, 20, 0, 0, 0, time.UTC)}

	out, err := NewListBudgetsUseCase(budgets, ledger, clock, loc).Execute(context.Background(), ListBudgetsInput{UserID: userID})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, loc), ledger.from)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, loc), ledger.until)

	require.Len(t, out.Budgets, 2)
	assert.Equal(t, "5200", out.Budgets[0].Spent.String())
	assert.Equal(t, "-200", out.Budgets[0].Remaining().String())
	assert.True(t, out.Budgets[1].Spent.IsZero())
}
