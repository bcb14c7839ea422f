package components

import (
	"ticketqueen/internal/handler"
	"ticketqueen/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewPurchaseHandler,
		api.NewTicketHandler,
		api.NewCartHandler,
		api.NewAuthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
