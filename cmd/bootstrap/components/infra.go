package components

import (
	"log/slog"

	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/infra/bookingapi"
	"dozzze-checkout/internal/infra/cartstore"
	"dozzze-checkout/internal/pkg/config"
	"dozzze-checkout/internal/sweeper"
	"dozzze-checkout/internal/usecase/commands"
	"dozzze-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		func(pool *pgxpool.Pool) cartstore.SnapshotRepository {
			return cartstore.NewPostgresSnapshots(pool)
		},
		func(snapshots cartstore.SnapshotRepository, logger *slog.Logger) *cartstore.Store {
			return cartstore.NewStore(snapshots, logger)
		},
		func(s *cartstore.Store) commands.SessionStore { return s },
		func(s *cartstore.Store) queries.SessionReader { return s },
		func(s *cartstore.Store) middleware.SessionToucher { return s },
		func(s *cartstore.Store) sweeper.SessionSource { return s },

		func(cfg config.Config) *bookingapi.Client {
			return bookingapi.NewClient(cfg.Upstream)
		},
		func(c *bookingapi.Client) commands.BookingGateway { return c },
		func(c *bookingapi.Client) queries.BookingReader { return c },
	),
)
