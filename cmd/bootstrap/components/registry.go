package components

import (
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
	"library-lending/internal/registry"

	"go.uber.org/fx"
)

var RegistryModule = fx.Module("registry",
	fx.Provide(
		clock.NewRealClock,
		NewLendingConfig,
		registry.NewPublicationCatalog,
		registry.NewBookRegistry,
		registry.NewCardRegistry,
		registry.NewPatronRegistry,
		registry.NewCardPatronLink,
		registry.NewReservationLedger,
	),
)

func NewLendingConfig(cfg config.Config) config.LendingConfig {
	return cfg.Lending
}
