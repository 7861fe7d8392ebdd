// Package cash implements the cash tender instrument: a single
// construction-then-query transaction that computes change between the
// amount due and the amount received.
package cash

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/instrument"
	"github.com/tindahan-pay/tindahan_pay/internal/money"
)

const cashCurrency = "PHP"

// Transaction is a cash tender. All fields are fixed at construction; an
// updated tender is a new Transaction (see WithAmountReceived).
type Transaction struct {
	instrument.Payment
	receiptNumber  string
	amountDue      decimal.Decimal
	amountReceived decimal.Decimal
}

// New records a cash tender. An empty receipt number gets a generated one
// via the payment base.
func New(receiptNumber string, amountDue, amountReceived decimal.Decimal) *Transaction {
	payment := instrument.NewPayment(receiptNumber, cashCurrency, amountDue)
	return &Transaction{
		Payment:        payment,
		receiptNumber:  payment.PaymentID(),
		amountDue:      amountDue,
		amountReceived: amountReceived,
	}
}

// Kind reports the instrument type.
func (t *Transaction) Kind() instrument.Kind { return instrument.KindCash }

// ReceiptNumber returns the receipt identifier.
func (t *Transaction) ReceiptNumber() string { return t.receiptNumber }

// AmountDue returns the total owed.
func (t *Transaction) AmountDue() decimal.Decimal { return t.amountDue }

// AmountReceived returns the cash handed over.
func (t *Transaction) AmountReceived() decimal.Decimal { return t.amountReceived }

// Change returns received minus due. A negative value means underpayment and
// is never clamped.
func (t *Transaction) Change() decimal.Decimal {
	return t.amountReceived.Sub(t.amountDue)
}

// ExactPayment reports whether the tender matched the amount due exactly.
func (t *Transaction) ExactPayment() bool {
	return t.amountReceived.Equal(t.amountDue)
}

// WithAmountReceived returns a copy of the transaction with a corrected
// tender; the original is untouched.
func (t *Transaction) WithAmountReceived(amount decimal.Decimal) *Transaction {
	updated := *t
	updated.amountReceived = amount
	return &updated
}

// ProcessPayment reports the change as the settled value.
func (t *Transaction) ProcessPayment(_ context.Context) (instrument.Result, error) {
	change := t.Change()
	return instrument.Result{
		TransactionID: t.receiptNumber,
		Kind:          instrument.KindCash,
		Amount:        t.amountDue,
		Balance:       change,
		Message:       fmt.Sprintf("Change: %s", money.Format(change, cashCurrency)),
		CompletedAt:   time.Now().UTC(),
	}, nil
}

// PrintReceipt renders the tender summary to w.
func (t *Transaction) PrintReceipt(w io.Writer) {
	exact := "No"
	if t.ExactPayment() {
		exact = "Yes"
	}
	fmt.Fprintln(w, "--- CASH RECEIPT ---")
	fmt.Fprintf(w, "Receipt Number: %s\n", t.receiptNumber)
	fmt.Fprintf(w, "Total Amount: %s\n", money.Format(t.amountDue, cashCurrency))
	fmt.Fprintf(w, "Amount Received: %s\n", money.Format(t.amountReceived, cashCurrency))
	fmt.Fprintf(w, "Change: %s\n", money.Format(t.Change(), cashCurrency))
	fmt.Fprintf(w, "Exact Payment: %s\n", exact)
}
