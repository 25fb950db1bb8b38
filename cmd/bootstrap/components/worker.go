package components

import (
	"context"

	"lesson-booking/internal/pkg/config"
	"lesson-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewNotificationRelay,
	),
	fx.Invoke(startRelay),
)

func startRelay(lc fx.Lifecycle, cfg config.Config, relay *worker.NotificationRelay) {
	if !cfg.Relay.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
