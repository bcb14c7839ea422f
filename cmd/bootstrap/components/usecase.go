package components

import (
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/config"
	"ticketqueen/internal/pkg/password"
	"ticketqueen/internal/usecase/commands"
	"ticketqueen/internal/usecase/lockset"
	"ticketqueen/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	lockset.New,
	commands.NewQuarantine,
	commands.NewPurchaseOptions,
	func(cfg config.Config) *password.Hasher {
		return password.NewHasher(cfg.Auth.BcryptCost)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEventCatalog,
		commands.NewTicketIssuer,
		func(c *commands.EventCatalog) commands.EventCommands { return c },
		func(i *commands.TicketIssuer) commands.TicketCommands { return i },
		commands.NewReservationCoordinator,
		commands.NewRecoveryCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
		queries.NewTicketQueries,
	),
)
