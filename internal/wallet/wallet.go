// Package wallet implements the e-wallet payment instrument: a PHP-denominated
// stored-value balance with cash-in, cash-out, and send operations.
package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/instrument"
	"github.com/tindahan-pay/tindahan_pay/internal/money"
)

const (
	// walletCurrency is fixed; the e-wallet is peso-denominated.
	walletCurrency = "PHP"
	// walletPaymentID is the fixed identifier for e-wallet transactions.
	walletPaymentID = "EWT001"
)

// Wallet is a stored-value instrument owned by a single person.
type Wallet struct {
	instrument.Payment
	ownerName string
	balance   decimal.Decimal
}

// New opens a wallet for the named owner with the given opening balance and
// transaction amount.
func New(ownerName string, amount, openingBalance decimal.Decimal) *Wallet {
	return &Wallet{
		Payment:   instrument.NewPayment(walletPaymentID, walletCurrency, amount),
		ownerName: ownerName,
		balance:   openingBalance,
	}
}

// Kind reports the instrument type.
func (w *Wallet) Kind() instrument.Kind { return instrument.KindWallet }

// OwnerName returns the wallet owner.
func (w *Wallet) OwnerName() string { return w.ownerName }

// Balance returns the current balance.
func (w *Wallet) Balance() decimal.Decimal { return w.balance }

// CashIn credits the wallet. Non-positive amounts are rejected with
// ErrNonPositiveAmount and leave the balance unchanged.
func (w *Wallet) CashIn(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return w.balance, instrument.ErrNonPositiveAmount
	}
	w.balance = w.balance.Add(amount)
	return w.balance, nil
}

// CashOut debits the wallet. Non-positive amounts and amounts beyond the
// balance are rejected; the balance is unchanged on failure.
func (w *Wallet) CashOut(amount decimal.Decimal) (decimal.Decimal, error) {
	return w.debit(amount)
}

// SendPayment debits the wallet to pay a third party. Same rules as CashOut.
func (w *Wallet) SendPayment(amount decimal.Decimal) (decimal.Decimal, error) {
	return w.debit(amount)
}

func (w *Wallet) debit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return w.balance, instrument.ErrNonPositiveAmount
	}
	if amount.GreaterThan(w.balance) {
		return w.balance, instrument.ErrInsufficientFunds
	}
	w.balance = w.balance.Sub(amount)
	return w.balance, nil
}

// CheckBalance formats the current balance for display.
func (w *Wallet) CheckBalance() string {
	return fmt.Sprintf("Current balance: %s", money.Format(w.balance, w.Currency()))
}

// ProcessPayment settles the pre-declared transaction amount against the
// wallet balance.
func (w *Wallet) ProcessPayment(_ context.Context) (instrument.Result, error) {
	if w.balance.LessThan(w.Amount()) {
		return instrument.Result{}, instrument.ErrInsufficientFunds
	}
	w.balance = w.balance.Sub(w.Amount())
	return instrument.Result{
		TransactionID: w.PaymentID(),
		Kind:          instrument.KindWallet,
		Amount:        w.Amount(),
		Balance:       w.balance,
		Message:       fmt.Sprintf("Payment of %s processed via e-wallet.", money.Format(w.Amount(), w.Currency())),
		CompletedAt:   time.Now().UTC(),
	}, nil
}
