package bootstrap

import (
	"github.com/psu6810110220/StoreGame/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.JWTConfig { return cfg.JWT },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	),
)
