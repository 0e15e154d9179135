// Package report contains ledger export use cases.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// Row is one exported ledger line.
type Row struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
	Wallet      string `csv:"wallet"`
	Kind        string `csv:"kind"`
	Amount      string `csv:"amount"`
}

// ExportTransactionsInput selects the calendar days to export, both inclusive.
type ExportTransactionsInput struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
}

// ExportTransactionsOutput holds the rendered rows and summary totals.
type ExportTransactionsOutput struct {
	Rows        []*Row
	TotalSpent  decimal.Decimal
	TotalIncome decimal.Decimal
}

// WriteCSV renders the rows with a header line.
func (o *ExportTransactionsOutput) WriteCSV(w io.Writer) error {
	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := gocsv.MarshalCSV(o.Rows, writer); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// ExportTransactionsUseCase renders a statement of the ledger for a date range.
// Balance corrections are left out of statements.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	location        *time.Location
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository, location *time.Location) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		location:        location,
	}
}

// Execute performs the export, oldest transaction first.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	from := input.From.In(uc.location)
	to := input.To.In(uc.location)
	if valueobject.StartOfDay(to).Before(valueobject.StartOfDay(from)) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportRange,
			"from date must not be after to date",
			domainerror.ErrInvalidReportRange,
		)
	}

	window := valueobject.DayRange(from, to)
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID, entity.TransactionFilter{
		From:  &window.Start,
		Until: &window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for report: %w", err)
	}

	out := &ExportTransactionsOutput{
		Rows:        make([]*Row, 0, len(transactions)),
		TotalSpent:  decimal.Zero,
		TotalIncome: decimal.Zero,
	}

	// The ledger lists newest first.
	for i := len(transactions) - 1; i >= 0; i-- {
		tx := transactions[i]
		if tx.Category == entity.CategoryBalanceAdjustment {
			continue
		}

		if tx.Kind == entity.TransactionKindExpense {
			out.TotalSpent = out.TotalSpent.Add(tx.Amount)
		} else {
			out.TotalIncome = out.TotalIncome.Add(tx.Amount)
		}

		out.Rows = append(out.Rows, &Row{
			Date:        tx.Date.In(uc.location).Format(valueobject.DateLayout),
			Description: tx.Description,
			Category:    tx.Category,
			Wallet:      string(tx.Wallet),
			Kind:        string(tx.Kind),
			Amount:      tx.Amount.StringFixed(2),
		})
	}

	slog.Debug("Transactions exported",
		"userID", input.UserID,
		"rows", len(out.Rows),
		"from", from.Format(valueobject.DateLayout),
		"to", to.Format(valueobject.DateLayout),
	)

	return out, nil
}
