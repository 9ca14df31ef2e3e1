package bootstrap

import (
	"dozzze-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MetricsModule,
	SessionModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweepModule,
)
