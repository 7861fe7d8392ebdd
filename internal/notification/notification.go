package notification

import (
	"context"
	"log/slog"

	"github.com/tindahan-pay/tindahan_pay/internal/instrument"
)

const (
	// KindSettlement indicates a completed instrument settlement.
	KindSettlement = "settlement"
	// KindCashChange indicates change handed back on a cash tender.
	KindCashChange = "cash_change"
)

// Message describes a notification payload.
type Message struct {
	Kind       string
	Instrument instrument.Kind
	Reference  string
	Body       string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger; it stands in
// for a real delivery channel in this single-process simulation.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification",
		"kind", message.Kind,
		"instrument", string(message.Instrument),
		"reference", message.Reference,
		"body", message.Body)
	return nil
}
