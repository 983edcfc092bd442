// Command ggmoney-watch tails the state change feed: it consumes change
// messages from the broker and logs them, one line per mutation. Useful
// for watching what a running ggmoney instance is doing.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"ggmoney/internal/amqp"
	"ggmoney/internal/cli"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for ggmoney-watch")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Watching state changes", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)

	err = client.ConsumeChanges(ctx, func(msg *amqp.ChangeMessage) error {
		attrs := []any{"kind", msg.Kind, "at", msg.Timestamp}
		if msg.ExpenseID != 0 {
			attrs = append(attrs, "expense_id", msg.ExpenseID)
		}
		logger.Info("State changed", attrs...)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consuming changes failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Watcher stopped")
}
