package bootstrap

import (
	"car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		SplitConfig,
	),
)

// SectionConfigs exposes the config sections components depend on directly.
type SectionConfigs struct {
	fx.Out

	Store  config.StoreConfig
	Rental config.RentalConfig
	Log    config.LogConfig
}

func SplitConfig(cfg config.Config) SectionConfigs {
	return SectionConfigs{
		Store:  cfg.Store,
		Rental: cfg.Rental,
		Log:    cfg.Log,
	}
}
