package booking

import (
	"time"

	"github.com/psu6810110220/StoreGame/internal/pkg/clock"

	"github.com/google/uuid"
)

// GameSnapshot is the state of a game row as observed under its row lock.
type GameSnapshot struct {
	ID            uuid.UUID
	Title         string
	PriceCents    int64
	StockQuantity int32
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateBooking prices the normalized line requests against the locked game
// snapshots and assembles a PENDING booking. Every request must have a
// matching snapshot; stock checks happen before this point.
func (f *Factory) CreateBooking(
	userID uuid.UUID,
	pickupDate time.Time,
	reqs []LineRequest,
	games map[uuid.UUID]GameSnapshot,
	slipURL *string,
) (*Booking, error) {
	lines := make([]Line, 0, len(reqs))
	for _, r := range reqs {
		snap, ok := games[r.GameID]
		if !ok {
			return nil, ErrUnknownGame
		}
		line, err := NewLine(r.GameID, r.Quantity, snap.PriceCents)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return NewBooking(f.Clock.Now(), userID, pickupDate, lines, slipURL)
}
