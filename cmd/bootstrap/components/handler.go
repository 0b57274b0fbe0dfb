package components

import (
	"fleetbook/internal/handler"
	"fleetbook/internal/handler/api"
	"fleetbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewFleetHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
