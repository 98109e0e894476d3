package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/domain/game"
	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/pkg/errs"
	"github.com/psu6810110220/StoreGame/internal/pkg/patch"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

var (
	ErrInvalidGame = errs.New("invalid game")
	ErrGameMissing = errs.New("game does not exist")
	ErrGameInUse   = errs.New("game is referenced by bookings")
)

type CreateGameInput struct {
	Title         string
	Description   string
	PriceCents    int64
	StockQuantity int32
	ImageURL      string
	ReleaseDate   *time.Time
}

// UpdateGameInput carries a partial update; nil fields keep the stored value.
type UpdateGameInput struct {
	Title         *string
	Description   *string
	PriceCents    *int64
	StockQuantity *int32
	ImageURL      *string
	ReleaseDate   *time.Time
}

//go:generate mockgen -source=game.go -destination=../../../tests/mock/commands/game_mock.go -package=commandsmock
type GameCommands interface {
	CreateGame(ctx context.Context, in CreateGameInput) (*queries.GameView, error)
	UpdateGame(ctx context.Context, gameID uuid.UUID, in UpdateGameInput) (*queries.GameView, error)
	DeleteGame(ctx context.Context, gameID uuid.UUID) error
}

type gameCommandsImpl struct {
	repo      GameRepository
	gameQuery queries.GameQueries
}

func NewGameCommands(repo GameRepository, gameQuery queries.GameQueries) GameCommands {
	return &gameCommandsImpl{repo: repo, gameQuery: gameQuery}
}

func (uc *gameCommandsImpl) CreateGame(ctx context.Context, in CreateGameInput) (*queries.GameView, error) {
	g, err := game.NewGame(in.Title, in.Description, in.PriceCents, in.StockQuantity, in.ImageURL, in.ReleaseDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGame)
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return uc.gameQuery.GetByID(ctx, g.ID())
}

func (uc *gameCommandsImpl) UpdateGame(ctx context.Context, gameID uuid.UUID, in UpdateGameInput) (*queries.GameView, error) {
	current, err := uc.gameQuery.GetByID(ctx, gameID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGameMissing)
		}
		return nil, err
	}

	releaseDate := current.ReleaseDate
	if in.ReleaseDate != nil {
		releaseDate = in.ReleaseDate
	}

	// Revalidate through the constructor so partial updates cannot sneak an
	// empty title or negative price past the invariants.
	merged, err := game.NewGame(
		patch.Coalesce(in.Title, current.Title),
		patch.Coalesce(in.Description, current.Description),
		patch.Coalesce(in.PriceCents, current.PriceCents),
		patch.Coalesce(in.StockQuantity, current.StockQuantity),
		patch.Coalesce(in.ImageURL, current.ImageURL),
		releaseDate,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGame)
	}

	g := game.ReconstructGame(
		gameID,
		merged.Title(), merged.Description(),
		merged.PriceCents(), merged.StockQuantity(),
		merged.ImageURL(), merged.ReleaseDate(),
		current.CreatedAt, current.UpdatedAt,
	)
	if err := uc.repo.Update(ctx, g); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGameMissing)
		}
		return nil, err
	}
	return uc.gameQuery.GetByID(ctx, gameID)
}

func (uc *gameCommandsImpl) DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, gameID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrGameMissing)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrGameInUse)
		}
		return err
	}
	return nil
}
