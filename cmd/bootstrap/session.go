package bootstrap

import (
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/pkg/config"
	"dozzze-checkout/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		func(cfg config.Config) *sessiontoken.Validator {
			return sessiontoken.NewValidator(cfg.Session.Secret)
		},
		func(v *sessiontoken.Validator) middleware.TokenValidator { return v },
	),
)
