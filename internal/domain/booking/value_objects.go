package booking

import (
	"bytes"
	"errors"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrNoLines           = errors.New("booking requires at least one line")
	ErrInvalidQuantity   = errors.New("line quantity must be at least 1")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrPickupInPast      = errors.New("pickup date cannot be in the past")
	ErrDuplicateGame     = errors.New("duplicate game in lines")
	ErrUnknownGame       = errors.New("line references unknown game")
	ErrEmptySlipURL      = errors.New("slip url is empty")
	ErrSlipNotAttachable = errors.New("slip can no longer be attached")
)

// LineRequest is a raw (game, quantity) pair as submitted by the client,
// before prices are known.
type LineRequest struct {
	GameID   uuid.UUID
	Quantity int32
}

// NormalizeLineRequests validates raw lines and merges duplicate game IDs by
// summing their quantities, so each game row is locked exactly once. The
// result is ordered by ascending game ID, which is also the lock order.
func NormalizeLineRequests(reqs []LineRequest) ([]LineRequest, error) {
	if len(reqs) == 0 {
		return nil, ErrNoLines
	}

	merged := make(map[uuid.UUID]int32, len(reqs))
	for _, r := range reqs {
		if r.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if r.GameID == uuid.Nil {
			return nil, ErrUnknownGame
		}
		merged[r.GameID] += r.Quantity
	}

	out := make([]LineRequest, 0, len(merged))
	for id, qty := range merged {
		out = append(out, LineRequest{GameID: id, Quantity: qty})
	}
	// Byte order matches Postgres uuid ordering, so lock order is stable
	// across concurrent bookings that share games.
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].GameID[:], out[j].GameID[:]) < 0
	})
	return out, nil
}

// Line is one priced (game, quantity) pair inside a committed booking.
// The unit price is the price observed under the row lock at reservation
// time and is frozen thereafter.
type Line struct {
	gameID         uuid.UUID
	quantity       int32
	unitPriceCents int64
}

func NewLine(gameID uuid.UUID, quantity int32, unitPriceCents int64) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return Line{}, ErrNegativeAmount
	}
	return Line{
		gameID:         gameID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}, nil
}

func (l Line) GameID() uuid.UUID     { return l.gameID }
func (l Line) Quantity() int32       { return l.quantity }
func (l Line) UnitPriceCents() int64 { return l.unitPriceCents }

func (l Line) SubtotalCents() int64 {
	return l.unitPriceCents * int64(l.quantity)
}
