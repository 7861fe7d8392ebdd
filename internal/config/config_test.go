package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "PHP" {
		t.Fatalf("expected PHP default, got %s", cfg.Currency)
	}
	if !cfg.WalletOpeningBalance.Equal(decimal.RequireFromString("5000.00")) {
		t.Fatalf("expected opening balance 5000.00, got %s", cfg.WalletOpeningBalance)
	}
	if cfg.AuthMode != AuthModePlain {
		t.Fatalf("expected plain auth mode, got %s", cfg.AuthMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CURRENCY", "usd")
	t.Setenv("WALLET_OPENING_BALANCE", "123.45")
	t.Setenv("AUTH_MODE", "bcrypt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "USD" {
		t.Fatalf("expected USD, got %s", cfg.Currency)
	}
	if !cfg.WalletOpeningBalance.Equal(decimal.RequireFromString("123.45")) {
		t.Fatalf("unexpected opening balance %s", cfg.WalletOpeningBalance)
	}
	if cfg.AuthMode != AuthModeBcrypt {
		t.Fatalf("expected bcrypt auth mode, got %s", cfg.AuthMode)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WALLET_OPENING_BALANCE", "lots")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid opening balance")
	}

	t.Setenv("WALLET_OPENING_BALANCE", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative opening balance")
	}

	t.Setenv("WALLET_OPENING_BALANCE", "100")
	t.Setenv("AUTH_MODE", "argon2")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown auth mode")
	}
}
