package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
	"github.com/psu6810110220/StoreGame/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingRepository is the write side of the reservation engine. All methods
// that mutate state run inside a caller-owned transaction.
type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// SetLockTimeout bounds FOR UPDATE waits for the rest of the transaction.
// A breached bound surfaces as pg error 55P03, classified KindLockTimeout.
func (r *BookingRepository) SetLockTimeout(ctx context.Context, tx pgx.Tx, timeout time.Duration) error {
	// lock_timeout does not accept bind parameters.
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return infra.WrapRepoErr("failed to set lock timeout", err)
	}
	return nil
}

// LockGames acquires row-level exclusive locks on the requested game rows.
// The caller passes IDs in ascending byte order; ORDER BY id makes Postgres
// take the locks in that same order, so concurrent bookings that share games
// cannot deadlock on each other.
func (r *BookingRepository) LockGames(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) (map[uuid.UUID]booking.GameSnapshot, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, title, price_cents, stock_quantity
		 FROM games
		 WHERE id = ANY($1)
		 ORDER BY id
		 FOR UPDATE`,
		ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock game rows", err)
	}
	defer rows.Close()

	snapshots := make(map[uuid.UUID]booking.GameSnapshot, len(ids))
	for rows.Next() {
		var snap booking.GameSnapshot
		if err := rows.Scan(&snap.ID, &snap.Title, &snap.PriceCents, &snap.StockQuantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan locked game row", err)
		}
		snapshots[snap.ID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read locked game rows", err)
	}

	return snapshots, nil
}

// DecrementStock deducts stock for one locked game. The stock_quantity guard
// backs up the check already done against the locked snapshot; zero affected
// rows means the invariant would have been violated.
func (r *BookingRepository) DecrementStock(ctx context.Context, tx pgx.Tx, gameID uuid.UUID, quantity int32) error {
	tag, err := tx.Exec(ctx,
		`UPDATE games
		 SET stock_quantity = stock_quantity - $2, updated_at = now()
		 WHERE id = $1 AND stock_quantity >= $2`,
		gameID, quantity,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock underflow prevented", nil, infra.KindDBFailure)
	}
	return nil
}

// Create persists the booking and all its lines inside the transaction.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO bookings (id, user_id, pickup_date, total_cents, deposit_cents, slip_url, status, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.UserID(), b.PickupDate(), b.TotalCents(), b.DepositCents(), b.SlipURL(),
		b.Status().String(), b.PaymentStatus().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	for _, line := range b.Lines() {
		_, err := tx.Exec(ctx,
			`INSERT INTO booking_items (id, booking_id, game_id, quantity, unit_price_cents)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), b.ID(), line.GameID(), line.Quantity(), line.UnitPriceCents(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking item", err)
		}
	}

	return nil
}

// FindByIDForUpdate loads a booking with its lines, locking the booking row
// for the state-machine compare-and-set.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, userID           uuid.UUID
		pickupDate                  time.Time
		totalCents, depositCents    int64
		slipURL                     *string
		statusRaw, paymentStatusRaw string
		createdAt, updatedAt        time.Time
	)

	err := tx.QueryRow(ctx,
		`SELECT id, user_id, pickup_date, total_cents, deposit_cents, slip_url, status, payment_status, created_at, updated_at
		 FROM bookings
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	).Scan(&bookingID, &userID, &pickupDate, &totalCents, &depositCents, &slipURL, &statusRaw, &paymentStatusRaw, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking row", err)
	}

	status, err := booking.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored status", err)
	}
	paymentStatus, err := booking.NewPaymentStatus(paymentStatusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored payment status", err)
	}

	lines, err := r.findLines(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		bookingID, userID, pickupDate, lines, totalCents, depositCents,
		slipURL, status, paymentStatus, createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) findLines(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) ([]booking.Line, error) {
	rows, err := tx.Query(ctx,
		`SELECT game_id, quantity, unit_price_cents
		 FROM booking_items
		 WHERE booking_id = $1
		 ORDER BY game_id`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking items", err)
	}
	defer rows.Close()

	var lines []booking.Line
	for rows.Next() {
		var (
			gameID         uuid.UUID
			quantity       int32
			unitPriceCents int64
		)
		if err := rows.Scan(&gameID, &quantity, &unitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking item", err)
		}
		line, err := booking.NewLine(gameID, quantity, unitPriceCents)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored booking item", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking items", err)
	}

	return lines, nil
}

// UpdateStatus writes the status axis only.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateReview writes both lifecycle axes in one statement, so the
// PAID -> CONFIRMED cascade is never observable half-applied.
func (r *BookingRepository) UpdateReview(ctx context.Context, tx pgx.Tx, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, payment_status = $3, updated_at = now() WHERE id = $1`,
		id, status.String(), paymentStatus.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateSlip stores the payment-evidence reference.
func (r *BookingRepository) UpdateSlip(ctx context.Context, tx pgx.Tx, id uuid.UUID, slipURL string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET slip_url = $2, updated_at = now() WHERE id = $1`,
		id, slipURL,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update slip url", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
