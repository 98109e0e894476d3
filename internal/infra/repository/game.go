package repository

import (
	"context"

	"github.com/psu6810110220/StoreGame/internal/domain/game"
	"github.com/psu6810110220/StoreGame/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GameRepository is the catalog write side. It is the sole writer of price;
// stock is shared with the booking engine, which only decrements.
type GameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, g *game.Game) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO games (id, title, description, price_cents, stock_quantity, image_url, release_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID(), g.Title(), g.Description(), g.PriceCents(), g.StockQuantity(), g.ImageURL(), g.ReleaseDate(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert game", err)
	}
	return nil
}

func (r *GameRepository) Update(ctx context.Context, g *game.Game) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE games
		 SET title = $2, description = $3, price_cents = $4, stock_quantity = $5,
		     image_url = $6, release_date = $7, updated_at = now()
		 WHERE id = $1`,
		g.ID(), g.Title(), g.Description(), g.PriceCents(), g.StockQuantity(), g.ImageURL(), g.ReleaseDate(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update game", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("game not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete game", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("game not found", nil, infra.KindNotFound)
	}
	return nil
}
