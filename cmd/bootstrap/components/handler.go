package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentalHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
