package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
)

type BookingLineRequest struct {
	GameID   uuid.UUID `json:"game_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	PickupDate time.Time            `json:"pickup_date" binding:"required"`
	Lines      []BookingLineRequest `json:"lines" binding:"required,min=1,dive"`
	SlipURL    *string              `json:"slip_url,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	lines := make([]commands.BookingLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = commands.BookingLineInput{GameID: l.GameID, Quantity: l.Quantity}
	}
	return commands.CreateBookingInput{
		PickupDate: r.PickupDate,
		Lines:      lines,
		SlipURL:    r.SlipURL,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReviewPaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=PAID REJECTED"`
}

func (r ReviewPaymentRequest) Approve() bool {
	return r.PaymentStatus == "PAID"
}

type AttachSlipRequest struct {
	SlipURL string `json:"slip_url" binding:"required,url"`
}
