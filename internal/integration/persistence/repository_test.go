package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/infra/db"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file::memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	return database.DB()
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func tx(userID uuid.UUID, amount string, kind entity.TransactionKind, category string, wallet entity.Wallet, date time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, decimal.RequireFromString(amount), kind, category, wallet, date, category)
}

func TestTransactionRepository_FindByUserOrderAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()
	other := uuid.New()

	older := tx(userID, "100", entity.TransactionKindExpense, "Food", entity.WalletCash, day(1))
	sameDayA := tx(userID, "20", entity.TransactionKindExpense, "Transport", entity.WalletOnline, day(5))
	sameDayB := tx(userID, "3000", entity.TransactionKindIncome, "Salary", entity.WalletOnline, day(5))
	foreign := tx(other, "999", entity.TransactionKindExpense, "Food", entity.WalletCash, day(5))

	for _, item := range []*entity.Transaction{older, sameDayA, sameDayB, foreign} {
		require.NoError(t, repo.Create(ctx, item))
	}

	t.Run("most recent first with id tiebreak", func(t *testing.T) {
		list, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, list, 3)

		assert.Equal(t, sameDayB.ID, list[0].ID)
		assert.Equal(t, sameDayA.ID, list[1].ID)
		assert.Equal(t, older.ID, list[2].ID)
	})

	t.Run("half-open date window", func(t *testing.T) {
		from, until := day(1), day(5)
		list, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{From: &from, Until: &until})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, older.ID, list[0].ID)
	})

	t.Run("kind wallet and category", func(t *testing.T) {
		kind := entity.TransactionKindExpense
		wallet := entity.WalletOnline
		list, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{Kind: &kind, Wallet: &wallet, Category: "Transport"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, sameDayA.ID, list[0].ID)
	})
}

func TestTransactionRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	require.NoError(t, repo.CreateBatch(ctx, []*entity.Transaction{
		tx(userID, "1000", entity.TransactionKindIncome, "Salary", entity.WalletCash, day(1)),
		tx(userID, "250.50", entity.TransactionKindExpense, "Food", entity.WalletCash, day(2)),
		tx(userID, "49.50", entity.TransactionKindExpense, "Food", entity.WalletOnline, day(3)),
		tx(userID, "500", entity.TransactionKindIncome, "Gift", entity.WalletOnline, day(3)),
		tx(userID, "80", entity.TransactionKindExpense, "Transport", entity.WalletOnline, time.Date(2024, time.February, 28, 9, 0, 0, 0, time.UTC)),
	}))

	totals, err := repo.WalletTotals(ctx, userID)
	require.NoError(t, err)
	byWallet := map[entity.Wallet]entity.WalletTotals{}
	for _, w := range totals {
		byWallet[w.Wallet] = w
	}
	assert.Equal(t, "1000.00", byWallet[entity.WalletCash].Income.StringFixed(2))
	assert.Equal(t, "250.50", byWallet[entity.WalletCash].Expense.StringFixed(2))
	assert.Equal(t, "500.00", byWallet[entity.WalletOnline].Income.StringFixed(2))
	assert.Equal(t, "129.50", byWallet[entity.WalletOnline].Expense.StringFixed(2))

	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	amounts, err := repo.CategoryTotals(ctx, userID, march, march.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, amounts, 1)
	assert.Equal(t, "Food", amounts[0].Category)
	assert.Equal(t, "300.00", amounts[0].Total.StringFixed(2))
}

func TestTransactionRepository_DeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	item := tx(uuid.New(), "10", entity.TransactionKindExpense, "Food", entity.WalletCash, day(1))
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	assert.True(t, domainerror.IsNotFound(err))
}

func TestSavingsJarRepository_Transfer(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	stamp := time.Date(2026, time.October, 4, 9, 30, 0, 0, time.UTC)
	jars := NewSavingsJarRepository(gormDB, fixedClock{stamp})
	transactions := NewTransactionRepository(gormDB)
	userID := uuid.New()

	jar := entity.NewSavingsJar(userID, "Trip", decimal.NewFromInt(2000), "")
	require.NoError(t, jars.Create(ctx, jar))

	t.Run("applies delta and mirror together", func(t *testing.T) {
		mirror := jar.MirrorTransaction(decimal.NewFromInt(500), entity.WalletOnline, day(4))
		updated, err := jars.Transfer(ctx, jar.ID, decimal.NewFromInt(500), mirror)
		require.NoError(t, err)
		assert.Equal(t, "500.00", updated.CurrentAmount.StringFixed(2))
		assert.True(t, stamp.Equal(updated.UpdatedAt), "updated_at %v", updated.UpdatedAt)

		stored, err := transactions.FindByID(ctx, mirror.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.CategorySavings, stored.Category)
		assert.Equal(t, entity.TransactionKindExpense, stored.Kind)
	})

	t.Run("rolls back the jar when the mirror cannot be stored", func(t *testing.T) {
		existing := tx(userID, "1", entity.TransactionKindExpense, "Food", entity.WalletCash, day(4))
		require.NoError(t, transactions.Create(ctx, existing))

		mirror := jar.MirrorTransaction(decimal.NewFromInt(100), entity.WalletOnline, day(4))
		mirror.ID = existing.ID

		_, err := jars.Transfer(ctx, jar.ID, decimal.NewFromInt(100), mirror)
		require.Error(t, err)
		assert.True(t, domainerror.IsConservationFailure(err))

		reloaded, err := jars.FindByID(ctx, jar.ID)
		require.NoError(t, err)
		assert.Equal(t, "500.00", reloaded.CurrentAmount.StringFixed(2))
	})

	t.Run("unknown jar", func(t *testing.T) {
		mirror := jar.MirrorTransaction(decimal.NewFromInt(1), entity.WalletOnline, day(4))
		_, err := jars.Transfer(ctx, uuid.New(), decimal.NewFromInt(1), mirror)
		assert.ErrorIs(t, err, domainerror.ErrJarNotFound)
	})
}

func TestDebtRepository_FindByUserPendingFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewDebtRepository(newTestDB(t))
	userID := uuid.New()

	settled := entity.NewDebt(userID, "Asha", decimal.NewFromInt(100), entity.DebtOwedBy, day(9))
	settled.Settle()
	pendingOld := entity.NewDebt(userID, "Ravi", decimal.NewFromInt(40), entity.DebtOwedTo, day(1))
	pendingNew := entity.NewDebt(userID, "Meera", decimal.NewFromInt(60), entity.DebtOwedBy, day(3))

	require.NoError(t, repo.CreateBatch(ctx, []*entity.Debt{settled, pendingOld, pendingNew}))

	list, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, pendingNew.ID, list[0].ID)
	assert.Equal(t, pendingOld.ID, list[1].ID)
	assert.Equal(t, settled.ID, list[2].ID)

	pendingOld.Settle()
	require.NoError(t, repo.UpdateStatus(ctx, pendingOld))
	reloaded, err := repo.FindByID(ctx, pendingOld.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DebtStatusSettled, reloaded.Status)
}

func TestBudgetRepository_UpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	userID := uuid.New()

	budget := entity.NewBudget(userID, "Food", decimal.NewFromInt(5000))
	require.NoError(t, repo.Create(ctx, budget))
	require.NoError(t, repo.Create(ctx, entity.NewBudget(userID, "Bills", decimal.NewFromInt(2000))))

	budget.Limit = decimal.NewFromInt(6000)
	require.NoError(t, repo.Update(ctx, budget))

	list, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bills", list[0].Category)
	assert.Equal(t, budget.ID, list[1].ID)
	assert.Equal(t, "6000.00", list[1].Limit.StringFixed(2))
}

func TestRecurringRepository_OrderedByBillingDay(t *testing.T) {
	ctx := context.Background()
	repo := NewRecurringRepository(newTestDB(t))
	userID := uuid.New()

	rent := entity.NewRecurring(userID, "Rent", decimal.NewFromInt(15000), entity.TransactionKindExpense, 1, "Housing")
	netflix := entity.NewRecurring(userID, "Netflix", decimal.NewFromInt(649), entity.TransactionKindExpense, 15, "")
	require.NoError(t, repo.Create(ctx, netflix))
	require.NoError(t, repo.Create(ctx, rent))

	list, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rent", list[0].Name)
	assert.Equal(t, entity.DefaultRecurringCategory, list[1].Category)

	require.NoError(t, repo.Delete(ctx, rent.ID))
	_, err = repo.FindByID(ctx, rent.ID)
	assert.ErrorIs(t, err, domainerror.ErrRecurringNotFound)
}

func TestUserRepository_EmailLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser("priya@example.com", "Priya", "hash")
	require.NoError(t, repo.Create(ctx, user))

	exists, err := repo.ExistsByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}
