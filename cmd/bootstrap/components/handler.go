package components

import (
	"space-booking/internal/handler"
	"space-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewSpaceHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
