// Command finledger-worker consumes entry change events from RabbitMQ and
// records them as a structured audit trail. It acknowledges every message
// it can decode; downstream systems that need more than the log can tail
// the same queue with their own consumer group.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"finledger/internal/amqp"
	"finledger/internal/cli"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	logger.Info("Starting finledger-worker")

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		if err := client.Close(); err != nil {
			logger.Error("AMQP close error", "error", err)
		}
	})

	go func() {
		err := client.ConsumeEntryChanges(ctx, func(msg *amqp.EntryChangeMessage) error {
			slog.InfoContext(ctx, "Entry change recorded",
				"id", msg.ID,
				"op", msg.Op,
				"occurred_at", msg.Timestamp.Format(time.RFC3339))
			return nil
		})
		if err != nil && err != context.Canceled {
			logger.Error("Message consumption failed", "error", err)
		}
	}()

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped")
}
