package components

import (
	"github.com/psu6810110220/StoreGame/internal/infra/readstore"
	"github.com/psu6810110220/StoreGame/internal/infra/repository"
	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewGameRepository,
			fx.As(new(commands.GameRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewGameReadStore,
			fx.As(new(queries.GameReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReadStore)),
			fx.As(new(queries.UserReadStore)),
		),
	),
)
