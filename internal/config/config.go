package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	defaultAppName        = "TindahanPay"
	defaultAppEnv         = "development"
	defaultLogLevel       = "info"
	defaultCurrency       = "PHP"
	defaultWalletOpening  = "5000.00"
	walletOpeningEnvVar   = "WALLET_OPENING_BALANCE"
	authModeEnvVar        = "AUTH_MODE"
	defaultAuthMode       = AuthModePlain
)

// AuthMode selects the card credential-verification strategy.
type AuthMode string

const (
	// AuthModePlain compares passwords as given.
	AuthModePlain AuthMode = "plain"
	// AuthModeBcrypt stores and compares bcrypt hashes.
	AuthModeBcrypt AuthMode = "bcrypt"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName              string
	AppEnv               string
	LogLevel             string
	Currency             string
	WalletOpeningBalance decimal.Decimal
	AuthMode             AuthMode
}

// Load reads configuration values from the environment and populates a
// Config instance. A .env file in the working directory is applied first when
// present; real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:  getEnv("APP_NAME", defaultAppName),
		AppEnv:   getEnv("APP_ENV", defaultAppEnv),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		Currency: strings.ToUpper(getEnv("CURRENCY", defaultCurrency)),
	}

	opening, err := decimal.NewFromString(getEnv(walletOpeningEnvVar, defaultWalletOpening))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", walletOpeningEnvVar, err)
	}
	if opening.IsNegative() {
		return Config{}, fmt.Errorf("%s must not be negative", walletOpeningEnvVar)
	}
	cfg.WalletOpeningBalance = opening

	mode := AuthMode(strings.ToLower(getEnv(authModeEnvVar, string(defaultAuthMode))))
	switch mode {
	case AuthModePlain, AuthModeBcrypt:
		cfg.AuthMode = mode
	default:
		return Config{}, fmt.Errorf("invalid %s: %q", authModeEnvVar, mode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
