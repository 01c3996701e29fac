package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"personal-ledger/app"
)

func newClientCommand(ledger *app.LedgerService) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
		Long:  `Provides commands to register clients and list the registered ones.`,
	}

	var input app.RegisterClientCommand
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new client",
		Long: `Registers a client identified by a CPF. The CPF check digits are validated
and punctuation is ignored, so 529.982.247-25 and 52998224725 are the same client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ledger.RegisterClient(input)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Client %s registered successfully!", client.Profile.Name))
			return nil
		},
	}
	createCmd.Flags().StringVar(&input.Name, "name", "", "Full name (required)")
	createCmd.Flags().StringVar(&input.BirthDate, "birth-date", "", "Birth date as dd-mm-yyyy (required)")
	createCmd.Flags().StringVar(&input.TaxID, "tax-id", "", "CPF (required)")
	createCmd.Flags().StringVar(&input.Address, "address", "", "Address: street, number - district - city/state")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("birth-date")
	_ = createCmd.MarkFlagRequired("tax-id")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			clients := ledger.ListClients()
			if len(clients) == 0 {
				printFailure(out, "No clients registered.")
				return nil
			}
			for _, c := range clients {
				fmt.Fprintf(out, "%s\tCPF: %s\tAccounts: %d\n", c.Profile.Name, c.Profile.TaxID, len(c.Accounts()))
			}
			return nil
		},
	}

	clientCmd.AddCommand(createCmd, listCmd)
	return clientCmd
}
