package game

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("game title is required")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
)

// Game is a catalog unit with finite stock. The catalog side owns price and
// arbitrary stock adjustments; the booking engine only ever decrements stock.
type Game struct {
	id            uuid.UUID
	title         string
	description   string
	priceCents    int64
	stockQuantity int32
	imageURL      string
	releaseDate   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewGame(title, description string, priceCents int64, stockQuantity int32, imageURL string, releaseDate *time.Time) (*Game, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrEmptyTitle
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}

	return &Game{
		id:            uuid.New(),
		title:         trimmed,
		description:   description,
		priceCents:    priceCents,
		stockQuantity: stockQuantity,
		imageURL:      imageURL,
		releaseDate:   releaseDate,
	}, nil
}

func ReconstructGame(
	id uuid.UUID,
	title, description string,
	priceCents int64,
	stockQuantity int32,
	imageURL string,
	releaseDate *time.Time,
	createdAt, updatedAt time.Time,
) *Game {
	return &Game{
		id:            id,
		title:         title,
		description:   description,
		priceCents:    priceCents,
		stockQuantity: stockQuantity,
		imageURL:      imageURL,
		releaseDate:   releaseDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (g *Game) ID() uuid.UUID           { return g.id }
func (g *Game) Title() string           { return g.title }
func (g *Game) Description() string     { return g.description }
func (g *Game) PriceCents() int64       { return g.priceCents }
func (g *Game) StockQuantity() int32    { return g.stockQuantity }
func (g *Game) ImageURL() string        { return g.imageURL }
func (g *Game) ReleaseDate() *time.Time { return g.releaseDate }
func (g *Game) CreatedAt() time.Time    { return g.createdAt }
func (g *Game) UpdatedAt() time.Time    { return g.updatedAt }

func (g *Game) HasStock(quantity int32) bool {
	return g.stockQuantity >= quantity
}
