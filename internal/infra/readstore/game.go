package readstore

import (
	"context"
	"errors"

	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameReadStore struct {
	db *pgxpool.Pool
}

func NewGameReadStore(db *pgxpool.Pool) *GameReadStore {
	return &GameReadStore{db: db}
}

const gameViewColumns = `
	id, title, description, price_cents, stock_quantity, image_url, release_date, created_at, updated_at`

func (r *GameReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GameView, error) {
	view, err := scanGameView(r.db.QueryRow(ctx,
		`SELECT `+gameViewColumns+` FROM games WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find game by ID", err)
	}
	return view, nil
}

func (r *GameReadStore) FindAll(ctx context.Context) ([]*queries.GameView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+gameViewColumns+` FROM games ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query games", err)
	}
	defer rows.Close()

	var views []*queries.GameView
	for rows.Next() {
		view, err := scanGameView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan game row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read game rows", err)
	}
	return views, nil
}

func scanGameView(row pgx.Row) (*queries.GameView, error) {
	var view queries.GameView
	err := row.Scan(
		&view.ID, &view.Title, &view.Description, &view.PriceCents,
		&view.StockQuantity, &view.ImageURL, &view.ReleaseDate,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
