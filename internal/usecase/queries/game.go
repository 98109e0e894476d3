package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type GameView struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	PriceCents    int64      `json:"price_cents"`
	StockQuantity int32      `json:"stock_quantity"`
	ImageURL      string     `json:"image_url"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

//go:generate mockgen -source=game.go -destination=../../../tests/mock/queries/game_mock.go -package=queriesmock
type GameQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GameView, error)
	ListAll(ctx context.Context) ([]*GameView, error)
}

type GameReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GameView, error)
	FindAll(ctx context.Context) ([]*GameView, error)
}

type gameQueriesImpl struct {
	store GameReadStore
}

func NewGameQueries(store GameReadStore) GameQueries {
	return &gameQueriesImpl{store: store}
}

func (q *gameQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GameView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *gameQueriesImpl) ListAll(ctx context.Context) ([]*GameView, error) {
	return q.store.FindAll(ctx)
}
