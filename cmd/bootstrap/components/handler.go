package components

import (
	"rental-market/internal/handler"
	"rental-market/internal/handler/api"
	"rental-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPropertyHandler,
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
