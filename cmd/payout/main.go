// Command payout runs a single payout cycle and exits. Schedule it with cron or a Kubernetes CronJob.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"storefront-partners/cmd/bootstrap"
	"storefront-partners/internal/usecase/commands"

	"go.uber.org/fx"
)

func main() {
	threshold := flag.Int64("threshold", 0, "override the configured payout threshold (minor units)")
	timeout := flag.Duration("timeout", 10*time.Minute, "abort the cycle after this long")
	flag.Parse()

	var payouts commands.PayoutCommands
	app := fx.New(
		bootstrap.CoreModule,
		fx.Populate(&payouts),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start payout runner", "error", err)
		os.Exit(1)
	}

	code := run(payouts, *threshold, *timeout)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("failed to stop payout runner cleanly", "error", err)
	}
	os.Exit(code)
}

func run(payouts commands.PayoutCommands, threshold int64, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var override *int64
	if threshold > 0 {
		override = &threshold
	}

	result, err := payouts.RunCycle(ctx, override)
	if err != nil {
		slog.Error("payout cycle failed", "error", err)
		return 1
	}

	// Unconfirmed payouts are retried by the next run but still need an operator's eye.
	if len(result.Failed) > 0 || len(result.Unconfirmed) > 0 {
		return 2
	}
	return 0
}
