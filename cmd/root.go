package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"personal-ledger/app"
	"personal-ledger/config"
	"personal-ledger/store"
)

// NewLedgerService wires the in-memory stores with the configured defaults.
func NewLedgerService(cfg *config.Config) *app.LedgerService {
	return app.NewLedgerService(store.NewInMemoryClientStore(), store.NewInMemoryAccountStore(), app.Options{
		Branch: cfg.Branch,
		Limits: cfg.Limits,
		Clock:  cfg.Clock(),
	})
}

// NewRootCommand builds the full command tree around one ledger.
func NewRootCommand(ledger *app.LedgerService) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "A personal banking ledger",
		Long: `ledger keeps clients, their accounts and the deposits and withdrawals
made on them. State lives in memory for the lifetime of the process, so the
usual way to work with it is the interactive session started by "ledger repl".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newClientCommand(ledger),
		newAccountCommand(ledger),
		newTransactionCommand(ledger),
		newQueryCommand(ledger),
		newReplCommand(ledger),
	)
	return rootCmd
}

// Execute runs the CLI. This is called by main.main().
func Execute(cfg *config.Config) {
	rootCmd := NewRootCommand(NewLedgerService(cfg))
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

const menu = `
Commands:
  client create --name NAME --birth-date dd-mm-yyyy --tax-id CPF --address ADDR
  client list
  account open --tax-id CPF [--basic]
  account list [--tax-id CPF]
  transaction deposit --tax-id CPF --amount N [--account N]
  transaction withdraw --tax-id CPF --amount N [--account N]
  query statement --tax-id CPF [--account N] [--json]
  help | exit`

func newReplCommand(ledger *app.LedgerService) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long:  `Starts an interactive Read-Eval-Print Loop session that keeps the ledger in memory between commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(ledger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runRepl(ledger *app.LedgerService, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Starting ledger REPL. Type 'help' for commands, 'exit' or 'quit' to leave.")
	fmt.Fprintln(out, menu)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" || input == "q" {
			break
		}
		if input == "help" || input == "menu" {
			fmt.Fprintln(out, menu)
			continue
		}

		args := splitArgs(input)
		if args[0] == "repl" {
			fmt.Fprintln(out, "Already in a REPL session.")
			continue
		}

		// A fresh tree per line keeps flag values from leaking between commands.
		lineCmd := NewRootCommand(ledger)
		lineCmd.SetArgs(args)
		lineCmd.SetIn(in)
		lineCmd.SetOut(out)
		lineCmd.SetErr(out)
		if err := lineCmd.Execute(); err != nil {
			printError(out, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprintln(out, "Exiting REPL.")
	return nil
}

// splitArgs splits a line on whitespace, keeping double-quoted sections
// together so names and addresses can contain spaces.
func splitArgs(line string) []string {
	var args []string
	var current strings.Builder
	inQuotes, started := false, false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			started = true
		case (r == ' ' || r == '\t') && !inQuotes:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}
	return args
}
