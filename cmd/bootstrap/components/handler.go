package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewRequestHandler,
		NewIdentityMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewIdentityMiddleware(cfg config.Config) *middleware.IdentityMiddleware {
	return middleware.NewIdentityMiddleware(cfg.Auth)
}
