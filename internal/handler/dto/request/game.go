package request

import (
	"time"

	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
)

type CreateGameRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description,omitempty"`
	PriceCents    int64      `json:"price_cents" binding:"min=0"`
	StockQuantity int32      `json:"stock_quantity" binding:"min=0"`
	ImageURL      string     `json:"image_url,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
}

func (r CreateGameRequest) ToInput() commands.CreateGameInput {
	return commands.CreateGameInput{
		Title:         r.Title,
		Description:   r.Description,
		PriceCents:    r.PriceCents,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
		ReleaseDate:   r.ReleaseDate,
	}
}

// Absent fields keep their stored values.
type UpdateGameRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	PriceCents    *int64     `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	StockQuantity *int32     `json:"stock_quantity,omitempty" binding:"omitempty,min=0"`
	ImageURL      *string    `json:"image_url,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
}

func (r UpdateGameRequest) ToInput() commands.UpdateGameInput {
	return commands.UpdateGameInput{
		Title:         r.Title,
		Description:   r.Description,
		PriceCents:    r.PriceCents,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
		ReleaseDate:   r.ReleaseDate,
	}
}
