package instrument

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies a concrete payment instrument type.
type Kind string

const (
	KindBank   Kind = "bank"
	KindWallet Kind = "wallet"
	KindCard   Kind = "card"
	KindCash   Kind = "cash"
)

// Instrument is the contract every payment instrument satisfies. Each
// concrete type supplies its own settlement behavior via ProcessPayment;
// validation and payment details are shared through the embedded Payment.
// Settlement is synchronous and in-memory, so implementations complete
// immediately and do not observe context cancellation.
type Instrument interface {
	Kind() Kind
	Validate() error
	Details() string
	ProcessPayment(ctx context.Context) (Result, error)
}

// Payment carries the transaction fields shared by every instrument: an
// opaque payment identifier, the pre-declared transaction amount, and a
// currency code. Payment on its own does not settle, so it cannot be used
// as an Instrument directly.
type Payment struct {
	paymentID string
	amount    decimal.Decimal
	currency  string
}

// NewPayment builds the shared payment base. An empty id gets a generated
// identifier. The amount is stored as provided; Validate reports whether it
// is usable for settlement.
func NewPayment(id, currency string, amount decimal.Decimal) Payment {
	if id == "" {
		id = uuid.NewString()
	}
	return Payment{paymentID: id, amount: amount, currency: currency}
}

// Validate reports whether the transaction amount is positive.
func (p Payment) Validate() error {
	if !p.amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}

// Details formats the payment identity for display.
func (p Payment) Details() string {
	return fmt.Sprintf("Payment ID: %s, Amount: %s %s", p.paymentID, p.amount.StringFixed(2), p.currency)
}

// PaymentID returns the opaque payment identifier.
func (p Payment) PaymentID() string { return p.paymentID }

// Amount returns the pre-declared transaction amount.
func (p Payment) Amount() decimal.Decimal { return p.amount }

// Currency returns the currency code.
func (p Payment) Currency() string { return p.currency }
