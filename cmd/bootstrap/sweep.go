package bootstrap

import (
	"context"
	"log/slog"

	"dozzze-checkout/internal/pkg/clock"
	"dozzze-checkout/internal/pkg/config"
	"dozzze-checkout/internal/sweeper"

	"go.uber.org/fx"
)

var SweepModule = fx.Module("sweep",
	fx.Provide(
		func(source sweeper.SessionSource, clk clock.Clock, logger *slog.Logger) *sweeper.Sweeper {
			return sweeper.New(source, clk, logger)
		},
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, s *sweeper.Sweeper, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start(cfg.Sweep)
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
