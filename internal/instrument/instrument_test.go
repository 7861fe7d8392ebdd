package instrument

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidatePositiveAmount(t *testing.T) {
	p := NewPayment("PMT001", "PHP", decimal.NewFromInt(500))
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid payment, got %v", err)
	}
}

func TestValidateRejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-25)} {
		p := NewPayment("PMT001", "PHP", amount)
		if err := p.Validate(); !errors.Is(err, ErrNonPositiveAmount) {
			t.Fatalf("amount %s: expected ErrNonPositiveAmount, got %v", amount, err)
		}
	}
}

func TestDetailsFormat(t *testing.T) {
	p := NewPayment("PMT001", "PHP", decimal.NewFromFloat(150.5))
	details := p.Details()
	if details != "Payment ID: PMT001, Amount: 150.50 PHP" {
		t.Fatalf("unexpected details: %q", details)
	}
}

func TestEmptyPaymentIDIsGenerated(t *testing.T) {
	a := NewPayment("", "PHP", decimal.NewFromInt(1))
	b := NewPayment("", "PHP", decimal.NewFromInt(1))
	if a.PaymentID() == "" || b.PaymentID() == "" {
		t.Fatal("expected generated payment IDs")
	}
	if a.PaymentID() == b.PaymentID() {
		t.Fatalf("expected distinct generated IDs, both %s", a.PaymentID())
	}
	if strings.TrimSpace(a.PaymentID()) != a.PaymentID() {
		t.Fatalf("generated ID has surrounding space: %q", a.PaymentID())
	}
}
