package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

type GameResponse struct {
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

func FromGameView(view *queries.GameView) *GameResponse {
	resp := &GameResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromGameViews(views []*queries.GameView) []*GameResponse {
	out := make([]*GameResponse, len(views))
	for i, v := range views {
		out[i] = FromGameView(v)
	}
	return out
}
