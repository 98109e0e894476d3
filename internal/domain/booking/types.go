package booking

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadyReviewed      = errors.New("payment already reviewed")
)

// Status is the booking lifecycle axis, driven by administrators.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Allowed forward edges. COMPLETED and CANCELLED are terminal.
var statusEdges = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusEdges[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(statusEdges[s]) == 0
}

// PaymentStatus is the payment axis, independent of Status except for the
// PAID -> CONFIRMED cascade applied by the entity.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRejected PaymentStatus = "REJECTED"
)

func NewPaymentStatus(value string) (PaymentStatus, error) {
	switch PaymentStatus(value) {
	case PaymentPending, PaymentPaid, PaymentRejected:
		return PaymentStatus(value), nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsReviewed() bool {
	return p != PaymentPending
}
