package components

import (
	"context"
	"log/slog"

	"carflow/internal/infra/sms"
	"carflow/internal/notify"
	"carflow/internal/pkg/clock"
	"carflow/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		func(cfg config.Config) notify.Sender {
			return sms.NewSender(cfg.SMS)
		},
		func(outbox notify.Outbox, sender notify.Sender, cfg config.Config, clk clock.Clock, logger *slog.Logger) *notify.Dispatcher {
			return notify.NewDispatcher(outbox, sender, cfg.Notify, clk, logger)
		},
	),
	fx.Invoke(startDispatcher),
)

// The dispatcher runs for the lifetime of the process; cancelling its context
// on shutdown lets the current batch finish.
func startDispatcher(lc fx.Lifecycle, dispatcher *notify.Dispatcher) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go dispatcher.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
