package components

import (
	"github.com/psu6810110220/StoreGame/internal/handler"
	"github.com/psu6810110220/StoreGame/internal/handler/api"
	"github.com/psu6810110220/StoreGame/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGameHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
