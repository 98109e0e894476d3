//go:build unit || integration

package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/domain/game"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

type GameBuilder struct {
	ID            uuid.UUID
	Title         string
	Description   string
	PriceCents    int64
	StockQuantity int32
	ImageURL      string
	ReleaseDate   *time.Time
}

func NewGameBuilder() *GameBuilder {
	return &GameBuilder{
		ID:            uuid.New(),
		Title:         "Catan",
		Description:   "Trade, build, settle",
		PriceCents:    120_00,
		StockQuantity: 10,
	}
}

func (g *GameBuilder) WithTitle(title string) *GameBuilder {
	g.Title = title
	return g
}

func (g *GameBuilder) WithPriceCents(price int64) *GameBuilder {
	g.PriceCents = price
	return g
}

func (g *GameBuilder) WithStock(stock int32) *GameBuilder {
	g.StockQuantity = stock
	return g
}

func (g *GameBuilder) BuildDomain() (*game.Game, error) {
	return game.NewGame(g.Title, g.Description, g.PriceCents, g.StockQuantity, g.ImageURL, g.ReleaseDate)
}

func (g *GameBuilder) BuildView() *queries.GameView {
	now := time.Now()
	return &queries.GameView{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		PriceCents:    g.PriceCents,
		StockQuantity: g.StockQuantity,
		ImageURL:      g.ImageURL,
		ReleaseDate:   g.ReleaseDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
