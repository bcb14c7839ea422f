package components

import (
	"ticketqueen/internal/infra/memstore"
	"ticketqueen/internal/infra/readstore"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/infra/uow"
	"ticketqueen/internal/usecase/queries"
	"ticketqueen/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule wires the Postgres store. It needs a *pgxpool.Pool in the graph.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Event
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EventReadQueries)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		// Ticket
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TicketViewQueries)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork; repositories are created per transaction inside it
		uow.NewPostgresUoW,
	),
)

// MemoryPersistenceModule keeps everything in process memory (STORE_DRIVER=memory).
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		fx.Annotate(
			memstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			memstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
