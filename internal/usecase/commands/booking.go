package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/pkg/clock"
	"github.com/psu6810110220/StoreGame/internal/pkg/config"
	"github.com/psu6810110220/StoreGame/internal/pkg/errs"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
	"github.com/psu6810110220/StoreGame/internal/usecase/shared"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrGameNotFound            = errs.New("game not found")
	ErrInsufficientStock       = errs.New("insufficient stock")
	ErrStockContention         = errs.New("stock rows busy, retry later")
	ErrInvalidBookingRequest   = errs.New("invalid booking request")
	ErrInvalidStatusTransition = errs.New("invalid status transition")
	ErrPaymentAlreadyReviewed  = errs.New("payment already reviewed")
	ErrSlipLocked              = errs.New("slip can no longer be changed")
	ErrNotBookingOwner         = errs.New("booking belongs to another user")
)

type BookingLineInput struct {
	GameID   uuid.UUID
	Quantity int32
}

type CreateBookingInput struct {
	PickupDate time.Time
	Lines      []BookingLineInput
	SlipURL    *string
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock
type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*queries.BookingView, error)
	ReviewPayment(ctx context.Context, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
	AttachSlip(ctx context.Context, userID, bookingID uuid.UUID, slipURL string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	db           *pgxpool.Pool
	repo         BookingRepository
	bookingQuery queries.BookingQueries
	factory      *booking.Factory
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewBookingCommands(
	db *pgxpool.Pool,
	repo BookingRepository,
	bookingQuery queries.BookingQueries,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		db:           db,
		repo:         repo,
		bookingQuery: bookingQuery,
		factory:      booking.NewFactory(clk),
		clock:        clk,
		cfg:          cfg,
	}
}

// CreateBooking converts a line request into a persisted booking while
// decrementing game stock, all inside one transaction. Game rows are locked
// in id order so concurrent bookings over shared games cannot deadlock;
// the guarded decrement plus the in-transaction stock check guarantee stock
// never goes negative. Nothing is written when any line fails.
func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	lines, err := booking.NormalizeLineRequests(toLineRequests(in.Lines))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	if in.PickupDate.Before(uc.clock.Now()) {
		return nil, errs.Mark(booking.ErrPickupInPast, ErrInvalidBookingRequest)
	}

	gameIDs := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		gameIDs[i] = l.GameID
	}

	bookingID, err := shared.WithDefaultRetry(ctx, uc.db, func(tx pgx.Tx) (uuid.UUID, error) {
		if err := uc.repo.SetLockTimeout(ctx, tx, uc.cfg.LockTimeout); err != nil {
			return uuid.Nil, err
		}

		snapshots, err := uc.repo.LockGames(ctx, tx, gameIDs)
		if err != nil {
			return uuid.Nil, err
		}

		for _, l := range lines {
			snap, ok := snapshots[l.GameID]
			if !ok {
				return uuid.Nil, errs.Mark(errs.Newf("game %s does not exist", l.GameID), ErrGameNotFound)
			}
			if snap.StockQuantity < l.Quantity {
				return uuid.Nil, errs.Mark(
					errs.Newf("game %q has %d in stock, %d requested", snap.Title, snap.StockQuantity, l.Quantity),
					ErrInsufficientStock,
				)
			}
		}

		for _, l := range lines {
			if err := uc.repo.DecrementStock(ctx, tx, l.GameID, l.Quantity); err != nil {
				return uuid.Nil, err
			}
		}

		b, err := uc.factory.CreateBooking(userID, in.PickupDate, lines, snapshots, in.SlipURL)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrInvalidBookingRequest)
		}
		if err := uc.repo.Create(ctx, tx, b); err != nil {
			return uuid.Nil, err
		}
		return b.ID(), nil
	})
	if err != nil {
		return nil, uc.mapRepoError(err)
	}

	return uc.bookingQuery.GetByID(ctx, bookingID)
}

// TransitionStatus moves a booking along the fulfillment axis. The booking
// row is locked first so concurrent transitions serialize and each one is
// validated against the state actually persisted.
func (uc *bookingCommandsImpl) TransitionStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*queries.BookingView, error) {
	_, err := shared.WithDefaultRetry(ctx, uc.db, func(tx pgx.Tx) (struct{}, error) {
		b, err := uc.repo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return struct{}{}, err
		}
		if err := b.TransitionStatus(next); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidStatusTransition)
		}
		return struct{}{}, uc.repo.UpdateStatus(ctx, tx, bookingID, b.Status())
	})
	if err != nil {
		return nil, uc.mapRepoError(err)
	}

	return uc.bookingQuery.GetByID(ctx, bookingID)
}

// ReviewPayment settles the payment axis exactly once. Approval also
// confirms a pending booking; both columns land in a single update so no
// reader ever observes a half-applied review.
func (uc *bookingCommandsImpl) ReviewPayment(ctx context.Context, bookingID uuid.UUID, approve bool) (*queries.BookingView, error) {
	_, err := shared.WithDefaultRetry(ctx, uc.db, func(tx pgx.Tx) (struct{}, error) {
		b, err := uc.repo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return struct{}{}, err
		}
		if approve {
			err = b.ApprovePayment()
		} else {
			err = b.RejectPayment()
		}
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrPaymentAlreadyReviewed)
		}
		return struct{}{}, uc.repo.UpdateReview(ctx, tx, bookingID, b.Status(), b.PaymentStatus())
	})
	if err != nil {
		return nil, uc.mapRepoError(err)
	}

	return uc.bookingQuery.GetByID(ctx, bookingID)
}

// AttachSlip lets the booking owner add or replace payment evidence while
// the payment is still awaiting review.
func (uc *bookingCommandsImpl) AttachSlip(ctx context.Context, userID, bookingID uuid.UUID, slipURL string) (*queries.BookingView, error) {
	_, err := shared.WithDefaultRetry(ctx, uc.db, func(tx pgx.Tx) (struct{}, error) {
		b, err := uc.repo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return struct{}{}, err
		}
		if b.UserID() != userID {
			return struct{}{}, ErrNotBookingOwner
		}
		if err := b.AttachSlip(slipURL); err != nil {
			switch {
			case errors.Is(err, booking.ErrSlipNotAttachable):
				return struct{}{}, errs.Mark(err, ErrSlipLocked)
			default:
				return struct{}{}, errs.Mark(err, ErrInvalidBookingRequest)
			}
		}
		return struct{}{}, uc.repo.UpdateSlip(ctx, tx, bookingID, *b.SlipURL())
	})
	if err != nil {
		return nil, uc.mapRepoError(err)
	}

	return uc.bookingQuery.GetByID(ctx, bookingID)
}

func (uc *bookingCommandsImpl) mapRepoError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBookingNotFound)
	case infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(err, ErrStockContention)
	default:
		return err
	}
}

func toLineRequests(in []BookingLineInput) []booking.LineRequest {
	reqs := make([]booking.LineRequest, len(in))
	for i, l := range in {
		reqs[i] = booking.LineRequest{GameID: l.GameID, Quantity: l.Quantity}
	}
	return reqs
}
