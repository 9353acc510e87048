package components

import (
	"dreamstay/internal/handler"
	"dreamstay/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSearchHandler,
		api.NewReservationHandler,
		api.NewPricingHandler,
		api.NewFrontDeskHandler,
	),
	fx.Invoke(handler.NewRouter),
)
