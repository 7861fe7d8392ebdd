package shop

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/config"
	"github.com/tindahan-pay/tindahan_pay/internal/logging"
	"github.com/tindahan-pay/tindahan_pay/internal/notification"
)

type testNotifier struct {
	messages []notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.messages = append(n.messages, msg)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		AppName:              "TindahanPay",
		AppEnv:               "development",
		Currency:             "PHP",
		WalletOpeningBalance: decimal.NewFromInt(5_000),
		AuthMode:             config.AuthModePlain,
	}
}

func runSession(t *testing.T, script []string) (string, *testNotifier) {
	t.Helper()
	notifier := &testNotifier{}
	var out bytes.Buffer
	s := New(Deps{
		Cfg:      testConfig(),
		Logger:   logging.Discard(),
		Notifier: notifier,
		In:       strings.NewReader(strings.Join(script, "\n") + "\n"),
		Out:      &out,
	})
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run session: %v", err)
	}
	return out.String(), notifier
}

func TestCashPurchaseSession(t *testing.T) {
	// Two milks (₱100), tendered ₱80 then ₱150 after the short tender is
	// rejected.
	out, notifier := runSession(t, []string{
		"1", "2", "0", // items: Milk x2, done
		"4",       // cash
		"OR-2001", // receipt number
		"80",      // not enough, re-prompted
		"150",
		"e",
	})

	for _, want := range []string{
		"Total amount: ₱100.00",
		"Amount received is not enough",
		"Receipt Number: OR-2001",
		"Change: ₱50.00",
		"Exact Payment: No",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("session output missing %q:\n%s", want, out)
		}
	}

	if len(notifier.messages) != 1 || notifier.messages[0].Kind != notification.KindCashChange {
		t.Fatalf("expected one cash change notification, got %+v", notifier.messages)
	}
}

func TestWalletSession(t *testing.T) {
	out, notifier := runSession(t, []string{
		"2", "1", "0", // items: Bread x1, done
		"2",     // e-wallet
		"Ana",   // owner
		"2",     // cash in
		"-5",    // rejected
		"3",     // cash out
		"10000", // insufficient
		"5",     // process payment
		"6",     // exit
	})

	for _, want := range []string{
		"Total amount: ₱35.00",
		"Amount must be greater than zero.",
		"Insufficient balance.",
		"Payment of ₱35.00 processed via e-wallet.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("session output missing %q:\n%s", want, out)
		}
	}

	if len(notifier.messages) != 1 || notifier.messages[0].Kind != notification.KindSettlement {
		t.Fatalf("expected one settlement notification, got %+v", notifier.messages)
	}
}

func TestCardSession(t *testing.T) {
	out, _ := runSession(t, []string{
		"0", // no items
		"3", // card
		"4111 2222 3333 4444",
		"123",
		"12/27",
		"1000", // credit limit
		"200",  // savings
		"1234", // password
		"1",    // pay
		"credit",
		"300",
		"9999", // wrong password first
		"1",    // pay again
		"credit",
		"300",
		"1234",
		"6", // exit
	})

	for _, want := range []string{
		"Incorrect password.",
		"Paid ₱300.00 using credit. Remaining credit: ₱700.00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("session output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionEndsCleanlyOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	s := New(Deps{
		Cfg:    testConfig(),
		Logger: logging.Discard(),
		In:     strings.NewReader(""),
		Out:    &out,
	})
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean end on closed input, got %v", err)
	}
}

func TestCatalogTotal(t *testing.T) {
	catalog := DefaultCatalog()
	items := []LineItem{
		{Product: catalog[0], Quantity: 2}, // Milk 50 x2
		{Product: catalog[4], Quantity: 1}, // Coffee 120
	}
	if total := Total(items); !total.Equal(decimal.NewFromInt(220)) {
		t.Fatalf("expected total 220, got %s", total)
	}
}
