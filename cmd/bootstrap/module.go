package bootstrap

import (
	"time"

	"lesson-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

const migrateTimeout = 30 * time.Second

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Provide(
		components.NewPersistence,
	),
	fx.Supply(components.PoolFactory(NewDB)),
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
