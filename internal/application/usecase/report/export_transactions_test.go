package report

import (
	"bytes"
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

type newestFirstLedger struct {
	items  []*entity.Transaction
	filter entity.TransactionFilter
}

func (l *newestFirstLedger) Create(context.Context, *entity.Transaction) error        { return nil }
func (l *newestFirstLedger) CreateBatch(context.Context, []*entity.Transaction) error { return nil }
func (l *newestFirstLedger) Delete(context.Context, uuid.UUID) error                  { return nil }

func (l *newestFirstLedger) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (l *newestFirstLedger) FindByUser(_ context.Context, _ uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	l.filter = filter
	return l.items, nil
}

func (l *newestFirstLedger) WalletTotals(context.Context, uuid.UUID) ([]entity.WalletTotals, error) {
	return nil, nil
}

func (l *newestFirstLedger) CategoryTotals(context.Context, uuid.UUID, time.Time, time.Time) ([]entity.CategoryAmount, error) {
	return nil, nil
}

func at(d int) time.Time {
	return time.Date(2024, time.March, d, 11, 0, 0, 0, time.UTC)
}

func TestExportTransactions(t *testing.T) {
	userID := uuid.New()
	ledger := &newestFirstLedger{items: []*entity.Transaction{
		entity.NewTransaction(userID, decimal.NewFromInt(40), entity.TransactionKindExpense, entity.CategoryBalanceAdjustment, entity.WalletCash, at(7), "Manual Balance Correction"),
		entity.NewTransaction(userID, decimal.RequireFromString("250"), entity.TransactionKindExpense, "Food", entity.WalletCash, at(5), "Groceries, weekly"),
		entity.NewTransaction(userID, decimal.NewFromInt(50000), entity.TransactionKindIncome, "Salary", entity.WalletOnline, at(1), "March salary"),
	}}
	uc := NewExportTransactionsUseCase(ledger, time.UTC)

	out, err := uc.Execute(context.Background(), ExportTransactionsInput{UserID: userID, From: at(1), To: at(31)})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), *ledger.filter.Until)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "2024-03-01", out.Rows[0].Date)
	assert.Equal(t, "Food", out.Rows[1].Category)
	assert.Equal(t, "250.00", out.TotalSpent.StringFixed(2))
	assert.Equal(t, "50000.00", out.TotalIncome.StringFixed(2))

	var buf bytes.Buffer
	require.NoError(t, out.WriteCSV(&buf))
	assert.Equal(t,
		"date,description,category,wallet,kind,amount\n"+
			"2024-03-01,March salary,Salary,online,income,50000.00\n"+
			"2024-03-05,\"Groceries, weekly\",Food,cash,expense,250.00\n",
		buf.String())
}

func TestExportTransactions_InvertedRange(t *testing.T) {
	uc := NewExportTransactionsUseCase(&newestFirstLedger{}, time.UTC)

	_, err := uc.Execute(context.Background(), ExportTransactionsInput{UserID: uuid.New(), From: at(10), To: at(9)})

	assert.ErrorIs(t, err, domainerror.ErrInvalidReportRange)
}

func TestExportTransactions_SingleDay(t *testing.T) {
	ledger := &newestFirstLedger{}
	uc := NewExportTransactionsUseCase(ledger, time.UTC)

	out, err := uc.Execute(context.Background(), ExportTransactionsInput{UserID: uuid.New(), From: at(10), To: at(10)})
	require.NoError(t, err)

	assert.Empty(t, out.Rows)
	assert.Equal(t, 24*time.Hour, ledger.filter.Until.Sub(*ledger.filter.From))
}
