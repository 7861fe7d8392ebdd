package instrument

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result captures the outcome of a settlement or other instrument operation.
// Failures are reported through sentinel errors alongside a zero Result, so a
// populated Result always describes a completed (possibly informational)
// outcome.
type Result struct {
	TransactionID string
	Kind          Kind
	Amount        decimal.Decimal
	// Balance is the balance after the operation where the instrument has
	// one; for cash it carries the change due back.
	Balance     decimal.Decimal
	Message     string
	CompletedAt time.Time
}
