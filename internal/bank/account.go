// Package bank implements the bank-account payment instrument: a single
// balance mutated by deposits, withdrawals, and settlement of the
// pre-declared transaction amount.
package bank

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/instrument"
	"github.com/tindahan-pay/tindahan_pay/internal/money"
)

// Input captures the data required to open a bank account instrument.
type Input struct {
	PaymentID     string
	Currency      string
	Amount        decimal.Decimal
	BankName      string
	AccountNumber string
	HolderName    string
}

// Account is a bank-backed instrument. Identity fields are fixed at
// construction; the balance starts at zero and never goes negative.
type Account struct {
	instrument.Payment
	bankName      string
	accountNumber string
	holderName    string
	balance       decimal.Decimal
}

// New opens an account with a zero balance.
func New(input Input) *Account {
	return &Account{
		Payment:       instrument.NewPayment(input.PaymentID, input.Currency, input.Amount),
		bankName:      input.BankName,
		accountNumber: input.AccountNumber,
		holderName:    input.HolderName,
	}
}

// Kind reports the instrument type.
func (a *Account) Kind() instrument.Kind { return instrument.KindBank }

// BankName returns the issuing bank.
func (a *Account) BankName() string { return a.bankName }

// AccountNumber returns the account identifier.
func (a *Account) AccountNumber() string { return a.accountNumber }

// HolderName returns the account holder.
func (a *Account) HolderName() string { return a.holderName }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit credits the account and returns the new balance. Non-positive
// amounts are rejected with ErrNonPositiveAmount; there is no upper bound.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, instrument.ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw debits the account. Amounts beyond the balance are rejected with
// ErrInsufficientFunds and the balance is left unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(a.balance) {
		return a.balance, instrument.ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}

// CheckBalance formats the current balance for display.
func (a *Account) CheckBalance() string {
	return fmt.Sprintf("Current balance: %s", money.Format(a.balance, a.Currency()))
}

// ProcessPayment settles the pre-declared transaction amount against the
// balance. On success the balance is debited; otherwise the balance is
// unchanged and ErrInsufficientFunds is returned. A second settlement after a
// draining success is expected to fail.
func (a *Account) ProcessPayment(_ context.Context) (instrument.Result, error) {
	if a.balance.LessThan(a.Amount()) {
		return instrument.Result{}, instrument.ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(a.Amount())
	return instrument.Result{
		TransactionID: a.PaymentID(),
		Kind:          instrument.KindBank,
		Amount:        a.Amount(),
		Balance:       a.balance,
		Message:       "Payment processed via bank account.",
		CompletedAt:   time.Now().UTC(),
	}, nil
}
