//go:build unit

package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from booking.Status
		to   booking.Status
		ok   bool
	}{
		{"pending to confirmed", booking.StatusPending, booking.StatusConfirmed, true},
		{"pending to cancelled", booking.StatusPending, booking.StatusCancelled, true},
		{"pending to completed skips confirmation", booking.StatusPending, booking.StatusCompleted, false},
		{"confirmed to completed", booking.StatusConfirmed, booking.StatusCompleted, true},
		{"confirmed to cancelled", booking.StatusConfirmed, booking.StatusCancelled, true},
		{"confirmed back to pending", booking.StatusConfirmed, booking.StatusPending, false},
		{"completed is terminal", booking.StatusCompleted, booking.StatusCancelled, false},
		{"cancelled is terminal", booking.StatusCancelled, booking.StatusPending, false},
		{"self transition rejected", booking.StatusPending, booking.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
}

func TestNewStatus(t *testing.T) {
	s, err := booking.NewStatus("CONFIRMED")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, s)

	_, err = booking.NewStatus("confirmed")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	_, err = booking.NewStatus("")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestNewPaymentStatus(t *testing.T) {
	p, err := booking.NewPaymentStatus("PAID")
	assert.NoError(t, err)
	assert.Equal(t, booking.PaymentPaid, p)

	_, err = booking.NewPaymentStatus("APPROVED")
	assert.ErrorIs(t, err, booking.ErrInvalidPaymentStatus)
}

func TestPaymentStatusIsReviewed(t *testing.T) {
	assert.False(t, booking.PaymentPending.IsReviewed())
	assert.True(t, booking.PaymentPaid.IsReviewed())
	assert.True(t, booking.PaymentRejected.IsReviewed())
}
