package bootstrap

import (
	"ticketqueen/cmd/bootstrap/components"
	"ticketqueen/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		persistence(cfg),
		components.UseCaseModule,
		components.HandlerModule,
		RecoveryModule,
	)
}

func persistence(cfg config.Config) fx.Option {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PersistenceModule,
	)
}
