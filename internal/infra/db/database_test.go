package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-ledger/backend/config"
)

func TestNewConnection_SQLiteMigrates(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file::memory:",
	})
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck(context.Background()))

	for _, table := range []string{"users", "transactions", "budgets", "savings_jars", "debts", "recurring"} {
		assert.True(t, database.DB().Migrator().HasTable(table), table)
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})

	assert.ErrorContains(t, err, "unsupported database driver")
}
