// Package card implements the card payment instrument: parallel credit and
// savings balances behind a password gate, with a transfer operation that
// pays down credit debt from savings.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/instrument"
	"github.com/tindahan-pay/tindahan_pay/internal/money"
)

const (
	cardCurrency  = "PHP"
	cardPaymentID = "ATM001"
)

// AccountType selects which of the card's balances an operation targets.
type AccountType string

const (
	AccountCredit  AccountType = "credit"
	AccountSavings AccountType = "savings"
)

// ParseAccountType normalizes a user-supplied selector.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case AccountCredit:
		return AccountCredit, nil
	case AccountSavings:
		return AccountSavings, nil
	default:
		return "", instrument.ErrInvalidAccountType
	}
}

// Input captures the data required to issue a card instrument.
type Input struct {
	Number         string
	CVV            string
	Expiry         string
	CreditLimit    decimal.Decimal
	SavingsBalance decimal.Decimal
	Authenticator  Authenticator
}

// Card is a dual-balance instrument. The available credit starts equal to the
// limit; every mutating operation passes the authentication gate first.
type Card struct {
	instrument.Payment
	number         string
	cvv            string
	expiry         string
	creditLimit    decimal.Decimal
	creditBalance  decimal.Decimal
	savingsBalance decimal.Decimal
	auth           Authenticator
}

// New issues a card. The transaction amount on the shared payment base is
// zero; settlement goes through Pay rather than ProcessPayment.
func New(input Input) *Card {
	return &Card{
		Payment:        instrument.NewPayment(cardPaymentID, cardCurrency, decimal.Zero),
		number:         input.Number,
		cvv:            input.CVV,
		expiry:         input.Expiry,
		creditLimit:    input.CreditLimit,
		creditBalance:  input.CreditLimit,
		savingsBalance: input.SavingsBalance,
		auth:           input.Authenticator,
	}
}

// Kind reports the instrument type.
func (c *Card) Kind() instrument.Kind { return instrument.KindCard }

// CreditBalance returns the available credit.
func (c *Card) CreditBalance() decimal.Decimal { return c.creditBalance }

// SavingsBalance returns the savings balance.
func (c *Card) SavingsBalance() decimal.Decimal { return c.savingsBalance }

// CreditLimit returns the fixed credit ceiling.
func (c *Card) CreditLimit() decimal.Decimal { return c.creditLimit }

func (c *Card) authenticate(password string) error {
	if c.auth == nil || !c.auth.Verify(password) {
		return instrument.ErrIncorrectPassword
	}
	return nil
}

// Pay settles a purchase from the selected balance. Authentication runs
// before any other check.
func (c *Card) Pay(amount decimal.Decimal, account AccountType, password string) (instrument.Result, error) {
	if err := c.authenticate(password); err != nil {
		return instrument.Result{}, err
	}
	if !amount.IsPositive() {
		return instrument.Result{}, instrument.ErrNonPositiveAmount
	}

	switch account {
	case AccountCredit:
		if amount.GreaterThan(c.creditBalance) {
			return instrument.Result{}, instrument.ErrInsufficientFunds
		}
		c.creditBalance = c.creditBalance.Sub(amount)
		return c.result(amount, c.creditBalance,
			fmt.Sprintf("Paid %s using credit. Remaining credit: %s",
				money.Format(amount, cardCurrency), money.Format(c.creditBalance, cardCurrency))), nil
	case AccountSavings:
		if amount.GreaterThan(c.savingsBalance) {
			return instrument.Result{}, instrument.ErrInsufficientFunds
		}
		c.savingsBalance = c.savingsBalance.Sub(amount)
		return c.result(amount, c.savingsBalance,
			fmt.Sprintf("Paid %s using savings. Remaining savings: %s",
				money.Format(amount, cardCurrency), money.Format(c.savingsBalance, cardCurrency))), nil
	default:
		return instrument.Result{}, instrument.ErrInvalidAccountType
	}
}

// Deposit credits the selected balance. Credit deposits are capped at the
// room left under the limit; the overflow is dropped, not rejected. Savings
// deposits are unbounded.
func (c *Card) Deposit(amount decimal.Decimal, account AccountType, password string) (instrument.Result, error) {
	if err := c.authenticate(password); err != nil {
		return instrument.Result{}, err
	}
	if !amount.IsPositive() {
		return instrument.Result{}, instrument.ErrNonPositiveAmount
	}

	switch account {
	case AccountCredit:
		space := c.creditLimit.Sub(c.creditBalance)
		deposited := decimal.Min(space, amount)
		c.creditBalance = c.creditBalance.Add(deposited)
		return c.result(deposited, c.creditBalance,
			fmt.Sprintf("Deposited %s to credit. Available credit: %s",
				money.Format(deposited, cardCurrency), money.Format(c.creditBalance, cardCurrency))), nil
	case AccountSavings:
		c.savingsBalance = c.savingsBalance.Add(amount)
		return c.result(amount, c.savingsBalance,
			fmt.Sprintf("Deposited %s to savings. New savings balance: %s",
				money.Format(amount, cardCurrency), money.Format(c.savingsBalance, cardCurrency))), nil
	default:
		return instrument.Result{}, instrument.ErrInvalidAccountType
	}
}

// MakePayment moves funds from savings toward the outstanding credit debt.
// The transfer is capped at the debt, so a fully paid card still succeeds
// with zero movement.
func (c *Card) MakePayment(amount decimal.Decimal, password string) (instrument.Result, error) {
	if err := c.authenticate(password); err != nil {
		return instrument.Result{}, err
	}
	if !amount.IsPositive() {
		return instrument.Result{}, instrument.ErrNonPositiveAmount
	}

	debt := c.creditLimit.Sub(c.creditBalance)
	if amount.GreaterThan(c.savingsBalance) {
		return instrument.Result{}, instrument.ErrInsufficientFunds
	}
	payment := decimal.Min(amount, debt)
	c.savingsBalance = c.savingsBalance.Sub(payment)
	c.creditBalance = c.creditBalance.Add(payment)
	return c.result(payment, c.creditBalance,
		fmt.Sprintf("Paid %s from savings to credit. Available credit: %s",
			money.Format(payment, cardCurrency), money.Format(c.creditBalance, cardCurrency))), nil
}

// CheckBalance formats the selected balance for display, behind the
// authentication gate.
func (c *Card) CheckBalance(account AccountType, password string) (string, error) {
	if err := c.authenticate(password); err != nil {
		return "", err
	}
	switch account {
	case AccountCredit:
		return fmt.Sprintf("Credit balance: %s / %s",
			money.Format(c.creditBalance, cardCurrency), money.Format(c.creditLimit, cardCurrency)), nil
	case AccountSavings:
		return fmt.Sprintf("Savings balance: %s", money.Format(c.savingsBalance, cardCurrency)), nil
	default:
		return "", instrument.ErrInvalidAccountType
	}
}

// CardDetails renders the card identity with the number masked to its last
// four digits, behind the authentication gate.
func (c *Card) CardDetails(password string) (string, error) {
	if err := c.authenticate(password); err != nil {
		return "", err
	}
	return fmt.Sprintf("Card Number: %s\nCVV: ***\nExpiry Date: %s\nCredit Limit: %s\nAvailable Credit: %s\nSavings Balance: %s",
		maskNumber(c.number), c.expiry,
		money.Format(c.creditLimit, cardCurrency),
		money.Format(c.creditBalance, cardCurrency),
		money.Format(c.savingsBalance, cardCurrency)), nil
}

// ProcessPayment does not settle for cards; it reports that the dedicated
// Pay operation must be used. The call succeeds and mutates nothing.
func (c *Card) ProcessPayment(_ context.Context) (instrument.Result, error) {
	return instrument.Result{
		TransactionID: c.PaymentID(),
		Kind:          instrument.KindCard,
		Message:       "Use the 'pay' operation to perform card transactions.",
		CompletedAt:   time.Now().UTC(),
	}, nil
}

func (c *Card) result(amount, balance decimal.Decimal, message string) instrument.Result {
	return instrument.Result{
		TransactionID: c.PaymentID(),
		Kind:          instrument.KindCard,
		Amount:        amount,
		Balance:       balance,
		Message:       message,
		CompletedAt:   time.Now().UTC(),
	}
}

func maskNumber(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) <= 4 {
		return "**** **** **** " + digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
