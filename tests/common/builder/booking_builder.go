//go:build unit || integration

package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

type BookingBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	UserEmail     string
	PickupDate    time.Time
	SlipURL       *string
	Status        string
	PaymentStatus string
	Items         []queries.BookingLineView
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		UserEmail:     "player@example.com",
		PickupDate:    time.Now().Add(48 * time.Hour),
		Status:        "PENDING",
		PaymentStatus: "PENDING",
		Items: []queries.BookingLineView{
			{GameID: uuid.New(), GameTitle: "Catan", Quantity: 2, UnitPriceCents: 120_00},
		},
	}
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentStatus(paymentStatus string) *BookingBuilder {
	b.PaymentStatus = paymentStatus
	return b
}

func (b *BookingBuilder) WithItem(gameID uuid.UUID, title string, qty int32, unitPrice int64) *BookingBuilder {
	b.Items = append(b.Items, queries.BookingLineView{
		GameID: gameID, GameTitle: title, Quantity: qty, UnitPriceCents: unitPrice,
	})
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	var total int64
	for _, it := range b.Items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return &queries.BookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		UserEmail:     b.UserEmail,
		PickupDate:    b.PickupDate,
		TotalCents:    total,
		DepositCents:  total * 10 / 100,
		SlipURL:       b.SlipURL,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Items:         b.Items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
