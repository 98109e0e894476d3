package readstore

import (
	"context"
	"errors"

	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewColumns = `
	b.id, b.user_id, u.email, b.pickup_date, b.total_cents, b.deposit_cents,
	b.slip_url, b.status, b.payment_status, b.created_at, b.updated_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingViewColumns+`
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 WHERE b.id = $1`,
		id,
	)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	if err := r.attachItems(ctx, []*queries.BookingView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingViewColumns+`
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by user", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingViewColumns+`
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 ORDER BY b.created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query all bookings", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingReadStore) collect(ctx context.Context, rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachItems loads all lines for the given bookings in one query.
func (r *BookingReadStore) attachItems(ctx context.Context, views []*queries.BookingView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.BookingView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.db.Query(ctx,
		`SELECT bi.booking_id, bi.game_id, g.title, bi.quantity, bi.unit_price_cents
		 FROM booking_items bi
		 JOIN games g ON g.id = bi.game_id
		 WHERE bi.booking_id = ANY($1)
		 ORDER BY bi.booking_id, bi.game_id`,
		ids,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to query booking items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID uuid.UUID
			item      queries.BookingLineView
		)
		if err := rows.Scan(&bookingID, &item.GameID, &item.GameTitle, &item.Quantity, &item.UnitPriceCents); err != nil {
			return infra.WrapRepoErr("failed to scan booking item row", err)
		}
		if view, ok := byID[bookingID]; ok {
			view.Items = append(view.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read booking item rows", err)
	}
	return nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.UserID, &view.UserEmail, &view.PickupDate,
		&view.TotalCents, &view.DepositCents, &view.SlipURL,
		&view.Status, &view.PaymentStatus, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
