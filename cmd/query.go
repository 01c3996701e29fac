package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"personal-ledger/app"
	"personal-ledger/domain"
)

const statementTimeLayout = "02-01-2006 15:04:05"

func newQueryCommand(ledger *app.LedgerService) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query account information",
		Long:  `Provides commands to read account statements.`,
	}

	var (
		query  app.GetStatementQuery
		asJSON bool
	)
	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Show an account statement",
		Long:  `Prints every transaction recorded on the account in order, followed by the balance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ledger.GetStatement(query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(st, "", "  ")
				if err != nil {
					return fmt.Errorf("marshalling statement: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			printStatement(out, st)
			return nil
		},
	}
	addAccountFlags(statementCmd.Flags(), &query.TaxID, &query.AccountNumber)
	statementCmd.Flags().BoolVar(&asJSON, "json", false, "Print the statement as JSON")
	_ = statementCmd.MarkFlagRequired("tax-id")

	queryCmd.AddCommand(statementCmd)
	return queryCmd
}

func printStatement(out io.Writer, st domain.Statement) {
	fmt.Fprintln(out, "\n================ STATEMENT ================")
	if st.IsEmpty() {
		fmt.Fprintln(out, "No transactions recorded.")
	} else {
		for line := range st.Lines() {
			fmt.Fprintf(out, "%s:\t$ %s (%s)\n", line.Kind, domain.FormatAmount(line.Amount), line.Timestamp.Format(statementTimeLayout))
		}
	}
	fmt.Fprintf(out, "\nBalance:\t$ %s\n", domain.FormatAmount(st.Balance))
	fmt.Fprintln(out, "===========================================")
}
