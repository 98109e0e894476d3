package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

type BookingLineResponse struct {
	GameID         uuid.UUID `json:"game_id"`
	GameTitle      string    `json:"game_title"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	UserID        uuid.UUID             `json:"user_id"`
	UserEmail     string                `json:"user_email"`
	PickupDate    time.Time             `json:"pickup_date"`
	TotalCents    int64                 `json:"total_cents"`
	DepositCents  int64                 `json:"deposit_cents"`
	SlipURL       *string               `json:"slip_url,omitempty"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	Items         []BookingLineResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
