package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
	"github.com/psu6810110220/StoreGame/internal/domain/game"
	"github.com/psu6810110220/StoreGame/internal/domain/user"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

// BookingRepository is the write-side port for bookings. All methods run
// inside a caller-managed transaction so locks stay pinned until commit.
type BookingRepository interface {
	SetLockTimeout(ctx context.Context, tx pgx.Tx, timeout time.Duration) error
	LockGames(ctx context.Context, tx pgx.Tx, gameIDs []uuid.UUID) (map[uuid.UUID]booking.GameSnapshot, error)
	DecrementStock(ctx context.Context, tx pgx.Tx, gameID uuid.UUID, quantity int32) error
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, status booking.Status) error
	UpdateReview(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus) error
	UpdateSlip(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, slipURL string) error
}

type GameRepository interface {
	Create(ctx context.Context, g *game.Game) error
	Update(ctx context.Context, g *game.Game) error
	Delete(ctx context.Context, gameID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserReadStore resolves credentials and identity during auth flows.
// FindByIdentity accepts a username or an email and also returns the stored
// password hash so the caller can verify it without a second round trip.
type UserReadStore interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	FindByIdentity(ctx context.Context, identity string) (*queries.AuthorizedUserView, string, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
