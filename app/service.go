package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"personal-ledger/domain"
	"personal-ledger/store"
)

const BirthDateLayout = "02-01-2006"

type Options struct {
	Branch string
	Limits domain.WithdrawalLimits
	Clock  domain.Clock
}

// LedgerService is the registry in front of the core: it creates clients and
// accounts, finds them again, and routes deposits and withdrawals through the
// owning client.
type LedgerService struct {
	clients  store.ClientStore
	accounts store.AccountStore
	opts     Options
}

func NewLedgerService(cs store.ClientStore, as store.AccountStore, opts Options) *LedgerService {
	if cs == nil || as == nil {
		log.Fatal("FATAL: ClientStore and AccountStore must not be nil")
	}
	if opts.Clock == nil {
		opts.Clock = domain.SystemClock{}
	}
	if opts.Limits.PerOperation.IsZero() {
		opts.Limits = domain.DefaultWithdrawalLimits()
	}
	return &LedgerService{
		clients:  cs,
		accounts: as,
		opts:     opts,
	}
}

// --- Command Handlers ---

func (s *LedgerService) RegisterClient(cmd RegisterClientCommand) (*domain.Client, error) {
	taxID, err := domain.NormalizeTaxID(cmd.TaxID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, domain.NewDomainError("client name cannot be empty")
	}
	birthDate, err := time.Parse(BirthDateLayout, strings.TrimSpace(cmd.BirthDate))
	if err != nil {
		return nil, domain.NewDomainError("invalid birth date %q, use dd-mm-yyyy", cmd.BirthDate)
	}

	client := domain.NewClient(domain.Person{
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
		Address:   strings.TrimSpace(cmd.Address),
	})
	if err := s.clients.Save(client); err != nil {
		log.Printf("Client registration failed for tax id %s: %v", taxID, err)
		return nil, fmt.Errorf("failed to register client: %w", err)
	}

	log.Printf("Client %s (%s) registered", client.ID, taxID)
	return client, nil
}

func (s *LedgerService) OpenAccount(cmd OpenAccountCommand) (*domain.Account, error) {
	client, err := s.findClient(cmd.TaxID)
	if err != nil {
		return nil, fmt.Errorf("cannot open account: %w", err)
	}

	number := s.accounts.NextNumber()
	opts := []domain.AccountOption{domain.WithBranch(s.opts.Branch), domain.WithClock(s.opts.Clock)}
	var account *domain.Account
	if cmd.Basic {
		account, err = domain.NewAccount(number, client, opts...)
	} else {
		account, err = domain.NewCheckingAccount(number, client, s.opts.Limits, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("account creation failed validation: %w", err)
	}

	if err := s.accounts.Save(account); err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", account.ID(), err)
	}
	if err := client.AddAccount(account); err != nil {
		log.Printf("ERROR: account %s saved but could not be attached to client %s: %v", account.ID(), client.ID, err)
		return nil, fmt.Errorf("failed to attach account %s: %w", account.ID(), err)
	}

	log.Printf("Account %s opened for client %s (checking: %t)", account.ID(), client.ID, account.IsChecking())
	return account, nil
}

func (s *LedgerService) Deposit(cmd DepositCommand) error {
	client, account, err := s.resolve(cmd.TaxID, cmd.AccountNumber)
	if err != nil {
		return fmt.Errorf("failed to load account for deposit: %w", err)
	}

	if err := client.PerformTransaction(account, domain.NewDeposit(cmd.Amount)); err != nil {
		log.Printf("Deposit rejected for %s: %v", account.ID(), err)
		return fmt.Errorf("deposit failed for account %s: %w", account.ID(), err)
	}

	log.Printf("Deposit of %s successful for account %s. New balance: %s",
		cmd.Amount.String(), account.ID(), account.Balance().String())
	return nil
}

func (s *LedgerService) Withdraw(cmd WithdrawCommand) error {
	client, account, err := s.resolve(cmd.TaxID, cmd.AccountNumber)
	if err != nil {
		return fmt.Errorf("failed to load account for withdrawal: %w", err)
	}

	if err := client.PerformTransaction(account, domain.NewWithdrawal(cmd.Amount)); err != nil {
		log.Printf("Withdrawal rejected for %s: %v", account.ID(), err)
		return fmt.Errorf("withdrawal failed for account %s: %w", account.ID(), err)
	}

	log.Printf("Withdrawal of %s successful for account %s. New balance: %s",
		cmd.Amount.String(), account.ID(), account.Balance().String())
	return nil
}

// --- Query Handlers ---

func (s *LedgerService) GetStatement(query GetStatementQuery) (domain.Statement, error) {
	client, account, err := s.resolve(query.TaxID, query.AccountNumber)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("cannot get statement: %w", err)
	}
	if !client.Owns(account) {
		return domain.Statement{}, fmt.Errorf("%w: account %s", domain.ErrAccountNotOwned, account.ID())
	}
	return account.Statement(), nil
}

func (s *LedgerService) ListAccounts(query ListAccountsQuery) ([]domain.AccountSummary, error) {
	var accounts []*domain.Account
	if query.TaxID == "" {
		accounts = s.accounts.List()
	} else {
		client, err := s.findClient(query.TaxID)
		if err != nil {
			return nil, fmt.Errorf("cannot list accounts: %w", err)
		}
		accounts = client.Accounts()
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, domain.Summarize(account))
	}
	return summaries, nil
}

func (s *LedgerService) ListClients() []*domain.Client {
	return s.clients.List()
}

// --- Lookup helpers ---

func (s *LedgerService) findClient(rawTaxID string) (*domain.Client, error) {
	taxID, err := domain.NormalizeTaxID(rawTaxID)
	if err != nil {
		return nil, err
	}
	return s.clients.FindByTaxID(taxID)
}

// resolve finds the client and the requested account. Ownership is not checked
// here; the core rejects foreign accounts with ErrAccountNotOwned.
func (s *LedgerService) resolve(rawTaxID string, number int) (*domain.Client, *domain.Account, error) {
	client, err := s.findClient(rawTaxID)
	if err != nil {
		return nil, nil, err
	}

	if number == 0 {
		accounts := client.Accounts()
		if len(accounts) == 0 {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrNoAccounts, client.Profile.Name)
		}
		return client, accounts[0], nil
	}

	account, err := s.accounts.Get(number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			log.Printf("Account %d requested by client %s does not exist", number, client.ID)
		}
		return nil, nil, err
	}
	return client, account, nil
}
