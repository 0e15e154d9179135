package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

func newExportCmd(a *app) *cobra.Command {
	var email, from, to, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's transactions for a date range as CSV",
		Example: `  ledgerctl export --email me@example.com --from 2024-03-01 --to 2024-03-31
  ledgerctl export --email me@example.com --from 2024-03-01 --to 2024-03-31 -o march.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := a.resolveUser(cmd, email)
			if err != nil {
				return err
			}

			fromDay, err := valueobject.ParseDay(from, a.injector.Location)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			toDay, err := valueobject.ParseDay(to, a.injector.Location)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			out, err := a.injector.UseCases.ExportTransactions.Execute(cmd.Context(), report.ExportTransactionsInput{
				UserID: userID,
				From:   fromDay,
				To:     toDay,
			})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := out.WriteCSV(w); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%d rows, spent %s, income %s\n",
				len(out.Rows), out.TotalSpent.StringFixed(2), out.TotalIncome.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the ledger owner")
	cmd.Flags().StringVar(&from, "from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
