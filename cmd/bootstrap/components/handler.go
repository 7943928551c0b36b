package components

import (
	"ramillete/internal/handler"
	"ramillete/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRecipientHandler,
		api.NewOfferingHandler,
		api.NewImageHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
