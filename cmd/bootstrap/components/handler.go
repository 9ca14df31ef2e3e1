package components

import (
	"dozzze-checkout/internal/handler"
	"dozzze-checkout/internal/handler/api"
	"dozzze-checkout/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewDiscountHandler,
		api.NewCheckoutHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewSessionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
