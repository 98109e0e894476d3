package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DepositRatePercent is the fixed fraction of the total required as partial
// payment before confirmation.
const DepositRatePercent = 10

// Booking is a committed reservation of one or more games by a user.
// Created atomically with its lines and the matching stock decrements;
// afterwards only the two lifecycle axes may change.
type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	pickupDate    time.Time
	lines         []Line
	totalCents    int64
	depositCents  int64
	slipURL       *string
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking builds a PENDING booking from priced lines. The caller is
// responsible for having already reserved the stock under the same
// transaction that will persist the booking.
func NewBooking(now time.Time, userID uuid.UUID, pickupDate time.Time, lines []Line, slipURL *string) (*Booking, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if pickupDate.Before(now) {
		return nil, ErrPickupInPast
	}

	seen := make(map[uuid.UUID]struct{}, len(lines))
	var total int64
	for _, l := range lines {
		if _, dup := seen[l.GameID()]; dup {
			return nil, ErrDuplicateGame
		}
		seen[l.GameID()] = struct{}{}
		total += l.SubtotalCents()
	}

	if slipURL != nil {
		trimmed := strings.TrimSpace(*slipURL)
		if trimmed == "" {
			slipURL = nil
		} else {
			slipURL = &trimmed
		}
	}

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		pickupDate:   pickupDate,
		lines:        lines,
		totalCents:   total,
		depositCents: total * DepositRatePercent / 100,
		slipURL:      slipURL,
		// Payment evidence never skips the human review step.
		status:        StatusPending,
		paymentStatus: PaymentPending,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	pickupDate time.Time,
	lines []Line,
	totalCents, depositCents int64,
	slipURL *string,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		pickupDate:    pickupDate,
		lines:         lines,
		totalCents:    totalCents,
		depositCents:  depositCents,
		slipURL:       slipURL,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) PickupDate() time.Time        { return b.pickupDate }
func (b *Booking) Lines() []Line                { return b.lines }
func (b *Booking) TotalCents() int64            { return b.totalCents }
func (b *Booking) DepositCents() int64          { return b.depositCents }
func (b *Booking) SlipURL() *string             { return b.slipURL }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// TransitionStatus moves the booking along an allowed edge or fails with
// ErrInvalidTransition. It never touches stock: cancellation does not
// restock, returning units to the catalog is a manual stock adjustment.
func (b *Booking) TransitionStatus(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// ApprovePayment marks the payment PAID and cascades PENDING -> CONFIRMED on
// the status axis. Both fields must be persisted in a single write.
func (b *Booking) ApprovePayment() error {
	if b.paymentStatus.IsReviewed() {
		return ErrAlreadyReviewed
	}
	b.paymentStatus = PaymentPaid
	if b.status == StatusPending {
		b.status = StatusConfirmed
	}
	return nil
}

// RejectPayment marks the payment REJECTED and leaves the status axis alone.
func (b *Booking) RejectPayment() error {
	if b.paymentStatus.IsReviewed() {
		return ErrAlreadyReviewed
	}
	b.paymentStatus = PaymentRejected
	return nil
}

// AttachSlip stores the opaque payment-evidence reference, trimmed of
// surrounding whitespace. Only meaningful while the payment is still
// awaiting review.
func (b *Booking) AttachSlip(slipURL string) error {
	trimmed := strings.TrimSpace(slipURL)
	if trimmed == "" {
		return ErrEmptySlipURL
	}
	if b.paymentStatus.IsReviewed() {
		return ErrSlipNotAttachable
	}
	b.slipURL = &trimmed
	return nil
}
