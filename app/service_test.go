package app_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-ledger/app"
	"personal-ledger/domain"
	"personal-ledger/shared"
	"personal-ledger/store"
)

const (
	aliceTaxID = "529.982.247-25"
	bobTaxID   = "111.444.777-35"
)

// Helper to create decimals in tests
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// setup initializes stores and service for tests
func setup(t *testing.T) (*app.LedgerService, *stepClock) {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)}
	service := app.NewLedgerService(store.NewInMemoryClientStore(), store.NewInMemoryAccountStore(), app.Options{
		Branch: "0001",
		Limits: domain.DefaultWithdrawalLimits(),
		Clock:  clock,
	})
	return service, clock
}

func registerAlice(t *testing.T, service *app.LedgerService) *domain.Client {
	t.Helper()
	client, err := service.RegisterClient(app.RegisterClientCommand{
		Name:      "Alice Souza",
		BirthDate: "01-02-1990",
		TaxID:     aliceTaxID,
		Address:   "Rua A, 1 - Centro - Recife/PE",
	})
	require.NoError(t, err)
	return client
}

func TestLedgerService_RegisterClient(t *testing.T) {
	service, _ := setup(t)

	t.Run("Success", func(t *testing.T) {
		client := registerAlice(t, service)
		assert.Equal(t, "52998224725", client.Profile.TaxID)
		assert.Equal(t, "Alice Souza", client.Profile.Name)
		assert.Equal(t, time.Date(1990, time.February, 1, 0, 0, 0, 0, time.UTC), client.Profile.BirthDate)
	})

	t.Run("FailOnDuplicate", func(t *testing.T) {
		_, err := service.RegisterClient(app.RegisterClientCommand{Name: "Other", BirthDate: "01-01-2000", TaxID: "52998224725"})
		assert.ErrorIs(t, err, domain.ErrClientExists)
	})

	t.Run("FailOnInvalidTaxID", func(t *testing.T) {
		_, err := service.RegisterClient(app.RegisterClientCommand{Name: "Bad", BirthDate: "01-01-2000", TaxID: "123"})
		assert.ErrorIs(t, err, domain.ErrInvalidTaxID)
	})

	t.Run("FailOnBirthDate", func(t *testing.T) {
		_, err := service.RegisterClient(app.RegisterClientCommand{Name: "Bob", BirthDate: "1990-02-01", TaxID: bobTaxID})
		assert.Error(t, err)
	})

	t.Run("FailOnEmptyName", func(t *testing.T) {
		_, err := service.RegisterClient(app.RegisterClientCommand{Name: "  ", BirthDate: "01-01-2000", TaxID: bobTaxID})
		assert.Error(t, err)
	})

	assert.Len(t, service.ListClients(), 1)
}

func TestLedgerService_OpenAccount(t *testing.T) {
	service, _ := setup(t)
	alice := registerAlice(t, service)

	first, err := service.OpenAccount(app.OpenAccountCommand{TaxID: aliceTaxID})
	require.NoError(t, err)
	second, err := service.OpenAccount(app.OpenAccountCommand{TaxID: aliceTaxID, Basic: true})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number())
	assert.Equal(t, 2, second.Number())
	assert.True(t, first.IsChecking())
	assert.False(t, second.IsChecking())
	assert.Same(t, alice, first.Owner())
	assert.Equal(t, []*domain.Account{first, second}, alice.Accounts())

	_, err = service.OpenAccount(app.OpenAccountCommand{TaxID: bobTaxID})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestLedgerService_TransactionScenario(t *testing.T) {
	service, clock := setup(t)
	registerAlice(t, service)
	_, err := service.OpenAccount(app.OpenAccountCommand{TaxID: aliceTaxID})
	require.NoError(t, err)

	require.NoError(t, service.Deposit(app.DepositCommand{TaxID: aliceTaxID, Amount: dec("1000")}))
	require.NoError(t, service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, Amount: dec("200")}))

	err = service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, Amount: dec("600")})
	assert.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)

	require.NoError(t, service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, AccountNumber: 1, Amount: dec("200")}))
	require.NoError(t, service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, Amount: dec("200")}))

	err = service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, Amount: dec("50")})
	assert.ErrorIs(t, err, domain.ErrDailyWithdrawalLimitExceeded)

	err = service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, Amount: dec("5000")})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	err = service.Deposit(app.DepositCommand{TaxID: aliceTaxID, Amount: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	st, err := service.GetStatement(app.GetStatementQuery{TaxID: aliceTaxID})
	require.NoError(t, err)
	assert.True(t, st.Balance.Equal(dec("400")), "balance %s", st.Balance)
	assert.Equal(t, 4, st.Len())

	kinds := []shared.TransactionKind{}
	for line := range st.Lines() {
		kinds = append(kinds, line.Kind)
	}
	assert.Equal(t, []shared.TransactionKind{shared.Deposit, shared.Withdrawal, shared.Withdrawal, shared.Withdrawal}, kinds)

	clock.Advance(24 * time.Hour)
	assert.NoError(t, service.Withdraw(app.WithdrawCommand{TaxID: aliceTaxID, Amount: dec("50")}))
}

func TestLedgerService_Ownership(t *testing.T) {
	service, _ := setup(t)
	registerAlice(t, service)
	_, err := service.RegisterClient(app.RegisterClientCommand{Name: "Bob", BirthDate: "03-04-1985", TaxID: bobTaxID})
	require.NoError(t, err)

	aliceAcc, err := service.OpenAccount(app.OpenAccountCommand{TaxID: aliceTaxID})
	require.NoError(t, err)
	require.NoError(t, service.Deposit(app.DepositCommand{TaxID: aliceTaxID, Amount: dec("100")}))

	t.Run("BobCannotWithdrawFromAlice", func(t *testing.T) {
		err := service.Withdraw(app.WithdrawCommand{TaxID: bobTaxID, AccountNumber: aliceAcc.Number(), Amount: dec("10")})
		assert.ErrorIs(t, err, domain.ErrAccountNotOwned)
		assert.True(t, aliceAcc.Balance().Equal(dec("100")))
	})

	t.Run("BobCannotReadAliceStatement", func(t *testing.T) {
		_, err := service.GetStatement(app.GetStatementQuery{TaxID: bobTaxID, AccountNumber: aliceAcc.Number()})
		assert.ErrorIs(t, err, domain.ErrAccountNotOwned)
	})

	t.Run("BobHasNoAccounts", func(t *testing.T) {
		err := service.Deposit(app.DepositCommand{TaxID: bobTaxID, Amount: dec("10")})
		assert.ErrorIs(t, err, domain.ErrNoAccounts)
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		err := service.Deposit(app.DepositCommand{TaxID: aliceTaxID, AccountNumber: 99, Amount: dec("10")})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("UnknownClient", func(t *testing.T) {
		err := service.Deposit(app.DepositCommand{TaxID: "12345678909", Amount: dec("10")})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestLedgerService_ListAccounts(t *testing.T) {
	service, _ := setup(t)
	registerAlice(t, service)
	_, err := service.RegisterClient(app.RegisterClientCommand{Name: "Bob", BirthDate: "03-04-1985", TaxID: bobTaxID})
	require.NoError(t, err)

	_, err = service.OpenAccount(app.OpenAccountCommand{TaxID: aliceTaxID})
	require.NoError(t, err)
	_, err = service.OpenAccount(app.OpenAccountCommand{TaxID: bobTaxID, Basic: true})
	require.NoError(t, err)
	require.NoError(t, service.Deposit(app.DepositCommand{TaxID: bobTaxID, Amount: dec("42")}))

	all, err := service.ListAccounts(app.ListAccountsQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice Souza", all[0].Holder)
	assert.NotNil(t, all[0].WithdrawalsRemaining)
	assert.Equal(t, 3, *all[0].WithdrawalsRemaining)
	assert.Equal(t, "Bob", all[1].Holder)
	assert.Nil(t, all[1].Limits)
	assert.True(t, all[1].Balance.Equal(dec("42")))

	bobs, err := service.ListAccounts(app.ListAccountsQuery{TaxID: bobTaxID})
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, "0001-2", bobs[0].AccountID)

	_, err = service.ListAccounts(app.ListAccountsQuery{TaxID: "12345678909"})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
