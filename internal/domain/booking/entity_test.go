//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
)

func mustLine(t *testing.T, qty int32, unitPrice int64) booking.Line {
	t.Helper()
	l, err := booking.NewLine(uuid.New(), qty, unitPrice)
	require.NoError(t, err)
	return l
}

func newTestBooking(t *testing.T, lines ...booking.Line) *booking.Booking {
	t.Helper()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(now, uuid.New(), now.Add(48*time.Hour), lines, nil)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("computes total and deposit across lines", func(t *testing.T) {
		lines := []booking.Line{
			mustLine(t, 2, 150_00), // 300.00
			mustLine(t, 1, 99_50),  // 99.50
		}
		b, err := booking.NewBooking(now, userID, now.Add(24*time.Hour), lines, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(399_50), b.TotalCents())
		assert.Equal(t, int64(399_50)*booking.DepositRatePercent/100, b.DepositCents())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
	})

	t.Run("deposit rounds down", func(t *testing.T) {
		b, err := booking.NewBooking(now, userID, now.Add(24*time.Hour), []booking.Line{mustLine(t, 1, 99)}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(9), b.DepositCents())
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := booking.NewBooking(now, userID, now.Add(24*time.Hour), nil, nil)
		assert.ErrorIs(t, err, booking.ErrNoLines)
	})

	t.Run("rejects pickup in the past", func(t *testing.T) {
		_, err := booking.NewBooking(now, userID, now.Add(-time.Hour), []booking.Line{mustLine(t, 1, 100)}, nil)
		assert.ErrorIs(t, err, booking.ErrPickupInPast)
	})

	t.Run("rejects duplicate games", func(t *testing.T) {
		l, err := booking.NewLine(uuid.New(), 1, 100)
		require.NoError(t, err)
		_, err = booking.NewBooking(now, userID, now.Add(24*time.Hour), []booking.Line{l, l}, nil)
		assert.ErrorIs(t, err, booking.ErrDuplicateGame)
	})

	t.Run("blank slip url is stored as absent", func(t *testing.T) {
		blank := "   "
		b, err := booking.NewBooking(now, userID, now.Add(24*time.Hour), []booking.Line{mustLine(t, 1, 100)}, &blank)
		require.NoError(t, err)
		assert.Nil(t, b.SlipURL())
	})
}

func TestTransitionStatus(t *testing.T) {
	t.Run("walks the happy path", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))

		require.NoError(t, b.TransitionStatus(booking.StatusConfirmed))
		require.NoError(t, b.TransitionStatus(booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("rejects skipping confirmation", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		err := b.TransitionStatus(booking.StatusCompleted)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		require.NoError(t, b.TransitionStatus(booking.StatusCancelled))
		assert.ErrorIs(t, b.TransitionStatus(booking.StatusPending), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.TransitionStatus(booking.StatusConfirmed), booking.ErrInvalidTransition)
	})
}

func TestApprovePayment(t *testing.T) {
	t.Run("cascades pending booking to confirmed", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))

		require.NoError(t, b.ApprovePayment())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("does not cascade when already confirmed", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		require.NoError(t, b.TransitionStatus(booking.StatusConfirmed))

		require.NoError(t, b.ApprovePayment())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("does not resurrect a cancelled booking", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		require.NoError(t, b.TransitionStatus(booking.StatusCancelled))

		require.NoError(t, b.ApprovePayment())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("review happens exactly once", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		require.NoError(t, b.ApprovePayment())

		assert.ErrorIs(t, b.ApprovePayment(), booking.ErrAlreadyReviewed)
		assert.ErrorIs(t, b.RejectPayment(), booking.ErrAlreadyReviewed)
	})
}

func TestRejectPayment(t *testing.T) {
	b := newTestBooking(t, mustLine(t, 1, 100))

	require.NoError(t, b.RejectPayment())
	assert.Equal(t, booking.PaymentRejected, b.PaymentStatus())
	// Rejection leaves the fulfillment axis untouched.
	assert.Equal(t, booking.StatusPending, b.Status())

	assert.ErrorIs(t, b.ApprovePayment(), booking.ErrAlreadyReviewed)
}

func TestAttachSlip(t *testing.T) {
	t.Run("attaches and replaces while pending", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))

		require.NoError(t, b.AttachSlip("https://cdn.example.com/slips/1.png"))
		require.NoError(t, b.AttachSlip("https://cdn.example.com/slips/2.png"))
		require.NotNil(t, b.SlipURL())
		assert.Equal(t, "https://cdn.example.com/slips/2.png", *b.SlipURL())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))

		require.NoError(t, b.AttachSlip("  https://cdn.example.com/slips/4.png \n"))
		require.NotNil(t, b.SlipURL())
		assert.Equal(t, "https://cdn.example.com/slips/4.png", *b.SlipURL())
	})

	t.Run("rejects empty url", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		assert.ErrorIs(t, b.AttachSlip("  "), booking.ErrEmptySlipURL)
	})

	t.Run("locked after review", func(t *testing.T) {
		b := newTestBooking(t, mustLine(t, 1, 100))
		require.NoError(t, b.RejectPayment())
		assert.ErrorIs(t, b.AttachSlip("https://cdn.example.com/slips/3.png"), booking.ErrSlipNotAttachable)
	})
}
