package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/infra/db"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useTempDatabase(t *testing.T) string {
	t.Helper()
	url := "file:" + filepath.Join(t.TempDir(), "ledger.db")
	t.Setenv("DATABASE_DRIVER", config.DriverSQLite)
	t.Setenv("DATABASE_URL", url)
	return url
}

func seed(t *testing.T, url string) {
	t.Helper()
	database, err := db.NewConnection(&config.DatabaseConfig{Driver: config.DriverSQLite, URL: url})
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	user := entity.NewUser("owner@example.com", "Owner", "hash")
	require.NoError(t, persistence.NewUserRepository(database.DB()).Create(ctx, user))

	txRepo := persistence.NewTransactionRepository(database.DB())
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, txRepo.Create(ctx, entity.NewTransaction(user.ID, decimal.NewFromInt(250), entity.TransactionKindExpense, "Food", entity.WalletCash, day, "Groceries")))
	require.NoError(t, txRepo.Create(ctx, entity.NewTransaction(user.ID, decimal.NewFromInt(40), entity.TransactionKindIncome, entity.CategoryBalanceAdjustment, entity.WalletCash, day, "Manual Balance Correction")))
}

func TestMigrateThenExport(t *testing.T) {
	url := useTempDatabase(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")

	seed(t, url)

	out, err = run(t, "export", "--email", "OWNER@example.com", "--from", "2024-03-01", "--to", "2024-03-31")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "header plus one row; corrections are left out")
	assert.Equal(t, "date,description,category,wallet,kind,amount", lines[0])
	assert.Equal(t, "2024-03-05,Groceries,Food,cash,expense,250.00", lines[1])
}

func TestExport_UnknownUser(t *testing.T) {
	useTempDatabase(t)

	_, err := run(t, "migrate")
	require.NoError(t, err)

	_, err = run(t, "export", "--email", "nobody@example.com", "--from", "2024-03-01", "--to", "2024-03-31")
	assert.ErrorContains(t, err, "nobody@example.com")
}

func TestInsights_FallbackForQuietLedger(t *testing.T) {
	url := useTempDatabase(t)

	_, err := run(t, "migrate")
	require.NoError(t, err)
	seed(t, url)

	out, err := run(t, "insights", "--email", "owner@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "[neutral] Financial Health")
}
