package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/dashboard"
)

func newInsightsCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Print the current insights for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := a.resolveUser(cmd, email)
			if err != nil {
				return err
			}

			out, err := a.injector.UseCases.ListInsights.Execute(cmd.Context(), dashboard.ListInsightsInput{UserID: userID})
			if err != nil {
				return err
			}

			for _, in := range out.Insights {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", in.Severity, in.Title, in.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the ledger owner")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
