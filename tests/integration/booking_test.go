//go:build integration

package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
	"github.com/psu6810110220/StoreGame/internal/infra/readstore"
	"github.com/psu6810110220/StoreGame/internal/infra/repository"
	"github.com/psu6810110220/StoreGame/internal/pkg/clock"
	"github.com/psu6810110220/StoreGame/internal/pkg/config"
	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

type BookingIntegrationTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	commands commands.BookingCommands
	queries  queries.BookingQueries
	userID   uuid.UUID
	pickup   time.Time
}

func TestBookingIntegrationSuite(t *testing.T) {
	suite.Run(t, new(BookingIntegrationTestSuite))
}

func (s *BookingIntegrationTestSuite) SetupTest() {
	s.pool = setupDatabase(s.T())

	s.queries = queries.NewBookingQueries(readstore.NewBookingReadStore(s.pool))
	s.commands = commands.NewBookingCommands(
		s.pool,
		repository.NewBookingRepository(),
		s.queries,
		clock.NewRealClock(),
		config.BookingConfig{LockTimeout: 3 * time.Second},
	)

	s.userID = s.seedUser("alice@example.com", "alice")
	s.pickup = time.Now().Add(72 * time.Hour).Truncate(time.Second)
}

func (s *BookingIntegrationTestSuite) seedUser(email, username string) uuid.UUID {
	id := uuid.New()
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO users (id, email, username, display_name, password_hash, role)
		VALUES ($1, $2, $3, $4, 'x', 'user')`,
		id, email, username, username)
	s.Require().NoError(err)
	return id
}

func (s *BookingIntegrationTestSuite) seedGame(title string, priceCents int64, stock int32) uuid.UUID {
	id := uuid.New()
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO games (id, title, price_cents, stock_quantity)
		VALUES ($1, $2, $3, $4)`,
		id, title, priceCents, stock)
	s.Require().NoError(err)
	return id
}

func (s *BookingIntegrationTestSuite) stockOf(gameID uuid.UUID) int32 {
	var stock int32
	err := s.pool.QueryRow(context.Background(),
		"SELECT stock_quantity FROM games WHERE id = $1", gameID).Scan(&stock)
	s.Require().NoError(err)
	return stock
}

func (s *BookingIntegrationTestSuite) bookingCount() int {
	var n int
	err := s.pool.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings").Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *BookingIntegrationTestSuite) createBooking(gameID uuid.UUID, qty int32) (*queries.BookingView, error) {
	return s.commands.CreateBooking(context.Background(), s.userID, commands.CreateBookingInput{
		PickupDate: s.pickup,
		Lines:      []commands.BookingLineInput{{GameID: gameID, Quantity: qty}},
	})
}

func (s *BookingIntegrationTestSuite) TestCreateBookingPersistsSnapshotAndDecrementsStock() {
	gameID := s.seedGame("Elden Ring", 5990, 10)

	view, err := s.createBooking(gameID, 2)
	s.Require().NoError(err)

	s.Equal("PENDING", view.Status)
	s.Equal("PENDING", view.PaymentStatus)
	s.Equal(int64(11980), view.TotalCents)
	s.Equal(int64(1198), view.DepositCents)
	s.Require().Len(view.Items, 1)
	s.Equal("Elden Ring", view.Items[0].GameTitle)
	s.Equal(int64(5990), view.Items[0].UnitPriceCents)
	s.Equal(int32(8), s.stockOf(gameID))
}

func (s *BookingIntegrationTestSuite) TestLastUnitRaceAdmitsExactlyOneBooking() {
	gameID := s.seedGame("Limited Edition", 9900, 1)

	const workers = 8
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.createBooking(gameID, 1)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		s.True(
			errors.Is(err, commands.ErrInsufficientStock) || errors.Is(err, commands.ErrStockContention),
			"unexpected error: %v", err,
		)
	}
	s.Equal(1, succeeded)
	s.Equal(int32(0), s.stockOf(gameID))
	s.Equal(1, s.bookingCount())
}

func (s *BookingIntegrationTestSuite) TestConcurrentBookingsConserveStock() {
	const initialStock = 20
	gameID := s.seedGame("Hades II", 2490, initialStock)

	const workers = 15
	const qtyPerBooking = 3
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.createBooking(gameID, qtyPerBooking)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
		}
	}

	remaining := s.stockOf(gameID)
	s.Equal(int32(initialStock), remaining+int32(succeeded*qtyPerBooking),
		"booked units plus remaining stock must equal the initial stock")
	s.GreaterOrEqual(remaining, int32(0))
	s.Equal(succeeded, s.bookingCount())
}

func (s *BookingIntegrationTestSuite) TestMultiLineBookingIsAllOrNothing() {
	plentyID := s.seedGame("Stardew Valley", 1490, 50)
	scarceID := s.seedGame("Collector Box", 19900, 1)

	_, err := s.commands.CreateBooking(context.Background(), s.userID, commands.CreateBookingInput{
		PickupDate: s.pickup,
		Lines: []commands.BookingLineInput{
			{GameID: plentyID, Quantity: 5},
			{GameID: scarceID, Quantity: 2},
		},
	})
	s.Require().ErrorIs(err, commands.ErrInsufficientStock)

	s.Equal(int32(50), s.stockOf(plentyID), "no partial decrement on failure")
	s.Equal(int32(1), s.stockOf(scarceID))
	s.Equal(0, s.bookingCount())
}

func (s *BookingIntegrationTestSuite) TestDuplicateLinesMergeBeforeDecrement() {
	gameID := s.seedGame("Celeste", 1990, 10)

	view, err := s.commands.CreateBooking(context.Background(), s.userID, commands.CreateBookingInput{
		PickupDate: s.pickup,
		Lines: []commands.BookingLineInput{
			{GameID: gameID, Quantity: 2},
			{GameID: gameID, Quantity: 3},
		},
	})
	s.Require().NoError(err)

	s.Require().Len(view.Items, 1)
	s.Equal(int32(5), view.Items[0].Quantity)
	s.Equal(int32(5), s.stockOf(gameID))
}

func (s *BookingIntegrationTestSuite) TestLockTimeoutSurfacesAsStockContention() {
	gameID := s.seedGame("Baldur's Gate 3", 5990, 5)

	impatient := commands.NewBookingCommands(
		s.pool,
		repository.NewBookingRepository(),
		s.queries,
		clock.NewRealClock(),
		config.BookingConfig{LockTimeout: 200 * time.Millisecond},
	)

	// Pin the stock row from a separate transaction so the booking cannot
	// acquire its lock within the timeout.
	holder, err := s.pool.Begin(context.Background())
	s.Require().NoError(err)
	defer func() { _ = holder.Rollback(context.Background()) }()

	_, err = holder.Exec(context.Background(),
		"SELECT id FROM games WHERE id = $1 FOR UPDATE", gameID)
	s.Require().NoError(err)

	_, err = impatient.CreateBooking(context.Background(), s.userID, commands.CreateBookingInput{
		PickupDate: s.pickup,
		Lines:      []commands.BookingLineInput{{GameID: gameID, Quantity: 1}},
	})
	s.Require().ErrorIs(err, commands.ErrStockContention)

	s.Equal(int32(5), s.stockOf(gameID), "aborted booking must not touch stock")
	s.Equal(0, s.bookingCount())
}

func (s *BookingIntegrationTestSuite) TestApprovePaymentCascadesToConfirmed() {
	gameID := s.seedGame("Portal 2", 990, 5)
	created, err := s.createBooking(gameID, 1)
	s.Require().NoError(err)

	view, err := s.commands.ReviewPayment(context.Background(), created.ID, true)
	s.Require().NoError(err)
	s.Equal("PAID", view.PaymentStatus)
	s.Equal("CONFIRMED", view.Status)

	// Both columns must land in the same write.
	var status, paymentStatus string
	err = s.pool.QueryRow(context.Background(),
		"SELECT status, payment_status FROM bookings WHERE id = $1", created.ID).
		Scan(&status, &paymentStatus)
	s.Require().NoError(err)
	s.Equal("CONFIRMED", status)
	s.Equal("PAID", paymentStatus)

	_, err = s.commands.ReviewPayment(context.Background(), created.ID, false)
	s.Require().ErrorIs(err, commands.ErrPaymentAlreadyReviewed)
}

func (s *BookingIntegrationTestSuite) TestRejectPaymentLeavesStatusPending() {
	gameID := s.seedGame("Factorio", 3500, 5)
	created, err := s.createBooking(gameID, 1)
	s.Require().NoError(err)

	view, err := s.commands.ReviewPayment(context.Background(), created.ID, false)
	s.Require().NoError(err)
	s.Equal("REJECTED", view.PaymentStatus)
	s.Equal("PENDING", view.Status)
}

func (s *BookingIntegrationTestSuite) TestCancelDoesNotRestock() {
	gameID := s.seedGame("Outer Wilds", 2490, 4)
	created, err := s.createBooking(gameID, 3)
	s.Require().NoError(err)
	s.Require().Equal(int32(1), s.stockOf(gameID))

	view, err := s.commands.TransitionStatus(context.Background(), created.ID, booking.StatusCancelled)
	s.Require().NoError(err)
	s.Equal("CANCELLED", view.Status)
	s.Equal(int32(1), s.stockOf(gameID), "cancellation must not return units to stock")

	_, err = s.commands.TransitionStatus(context.Background(), created.ID, booking.StatusConfirmed)
	s.Require().ErrorIs(err, commands.ErrInvalidStatusTransition)
}

func (s *BookingIntegrationTestSuite) TestAttachSlipOwnershipAndLock() {
	gameID := s.seedGame("Slay the Spire", 1790, 5)
	created, err := s.createBooking(gameID, 1)
	s.Require().NoError(err)

	view, err := s.commands.AttachSlip(context.Background(), s.userID, created.ID, "https://pay.example.com/slip/1.png")
	s.Require().NoError(err)
	s.Require().NotNil(view.SlipURL)
	s.Equal("https://pay.example.com/slip/1.png", *view.SlipURL)

	otherID := s.seedUser("bob@example.com", "bob")
	_, err = s.commands.AttachSlip(context.Background(), otherID, created.ID, "https://pay.example.com/slip/2.png")
	s.Require().ErrorIs(err, commands.ErrNotBookingOwner)

	_, err = s.commands.ReviewPayment(context.Background(), created.ID, true)
	s.Require().NoError(err)
	_, err = s.commands.AttachSlip(context.Background(), s.userID, created.ID, "https://pay.example.com/slip/3.png")
	s.Require().ErrorIs(err, commands.ErrSlipLocked)
}

func (s *BookingIntegrationTestSuite) TestAttachSlipStoresTrimmedURL() {
	gameID := s.seedGame("Hollow Knight", 1490, 5)
	created, err := s.createBooking(gameID, 1)
	s.Require().NoError(err)

	view, err := s.commands.AttachSlip(context.Background(), s.userID, created.ID,
		"  https://pay.example.com/slip/9.png \n")
	s.Require().NoError(err)
	s.Require().NotNil(view.SlipURL)
	s.Equal("https://pay.example.com/slip/9.png", *view.SlipURL)

	var stored string
	err = s.pool.QueryRow(context.Background(),
		"SELECT slip_url FROM bookings WHERE id = $1", created.ID).Scan(&stored)
	s.Require().NoError(err)
	s.Equal("https://pay.example.com/slip/9.png", stored)
}

func (s *BookingIntegrationTestSuite) TestListByUserReturnsOnlyOwnBookings() {
	gameID := s.seedGame("Terraria", 990, 10)
	_, err := s.createBooking(gameID, 1)
	s.Require().NoError(err)

	otherID := s.seedUser("carol@example.com", "carol")
	_, err = s.commands.CreateBooking(context.Background(), otherID, commands.CreateBookingInput{
		PickupDate: s.pickup,
		Lines:      []commands.BookingLineInput{{GameID: gameID, Quantity: 1}},
	})
	s.Require().NoError(err)

	mine, err := s.queries.ListByUser(context.Background(), s.userID)
	s.Require().NoError(err)
	require.Len(s.T(), mine, 1)
	s.Equal(s.userID, mine[0].UserID)

	all, err := s.queries.ListAll(context.Background())
	s.Require().NoError(err)
	s.Len(all, 2)
}
