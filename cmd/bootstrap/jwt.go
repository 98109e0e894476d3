package bootstrap

import (
	"github.com/psu6810110220/StoreGame/internal/pkg/config"
	"github.com/psu6810110220/StoreGame/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
