package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tindahan-pay/tindahan_pay/internal/config"
	"github.com/tindahan-pay/tindahan_pay/internal/logging"
	"github.com/tindahan-pay/tindahan_pay/internal/notification"
	"github.com/tindahan-pay/tindahan_pay/internal/shop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := shop.New(shop.Deps{
		Cfg:      cfg,
		Logger:   logger,
		Notifier: notification.NewLoggerNotifier(logger),
		In:       os.Stdin,
		Out:      os.Stdout,
	})

	if err := store.Run(ctx); err != nil {
		logger.Error("session error", "error", err)
		os.Exit(1)
	}

	logger.Info("session complete")
}
