package components

import (
	"library-lending/internal/handler"
	"library-lending/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPublicationHandler,
		api.NewBookHandler,
		api.NewCardHandler,
		api.NewPatronHandler,
		api.NewLinkHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
