//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/psu6810110220/StoreGame/internal/domain/booking"
	"github.com/psu6810110220/StoreGame/internal/domain/user"
	"github.com/psu6810110220/StoreGame/internal/handler/api"
	resdto "github.com/psu6810110220/StoreGame/internal/handler/dto/response"
	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
	"github.com/psu6810110220/StoreGame/tests/common/builder"
	"github.com/psu6810110220/StoreGame/tests/common/httptest"
	commandsmock "github.com/psu6810110220/StoreGame/tests/mock/commands"
	queriesmock "github.com/psu6810110220/StoreGame/tests/mock/queries"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	userID uuid.UUID
	role   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleUser

	// Stand-in for the auth middleware.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
	})

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.GetMyBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", s.handler.UpdateStatus)
	s.router.PATCH("/bookings/:id/payment", s.handler.ReviewPayment)
	s.router.PUT("/bookings/:id/slip", s.handler.AttachSlip)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) createBody(gameID uuid.UUID, qty int32) map[string]any {
	return map[string]any{
		"pickup_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"lines": []map[string]any{
			{"game_id": gameID.String(), "quantity": qty},
		},
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	gameID := uuid.New()

	s.Run("success: returns 201 with the created view", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(gameID, 2), "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("PENDING", response.Status)
	})

	s.Run("error: 404 when a game does not exist", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrGameNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(gameID, 1), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "do not exist")
	})

	s.Run("error: 409 on insufficient stock", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrInsufficientStock).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(gameID, 99), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 503 when stock rows are contended", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrStockContention).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(gameID, 1), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "retry")
	})

	s.Run("error: 400 on validation failures without reaching the usecase", func() {
		bodies := []map[string]any{
			{"pickup_date": time.Now().Add(time.Hour).Format(time.RFC3339), "lines": []map[string]any{}},
			{"pickup_date": time.Now().Add(time.Hour).Format(time.RFC3339), "lines": []map[string]any{{"game_id": gameID.String(), "quantity": 0}}},
			{"lines": []map[string]any{{"game_id": gameID.String(), "quantity": 1}}},
		}
		for _, body := range bodies {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(http.StatusBadRequest, rec.Code, "body: %v", body)
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: owner reads own booking", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.UserID, response.UserID)
	})

	s.Run("error: 403 when reading another user's booking", func() {
		view := builder.NewBookingBuilder().BuildView() // random owner
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("success: admin reads any booking", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleUser }()

		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: confirms a pending booking", func() {
		view := builder.NewBookingBuilder().WithStatus("CONFIRMED").BuildView()
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), bookingID, booking.StatusConfirmed).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("error: 400 on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "SHIPPED"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown booking status")
	})

	s.Run("error: 422 on invalid transition", func() {
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), bookingID, booking.StatusCompleted).
			Return(nil, commands.ErrInvalidStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "COMPLETED"}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), bookingID, booking.StatusConfirmed).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestReviewPayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payment"

	s.Run("success: approval confirms and pays in one response", func() {
		view := builder.NewBookingBuilder().WithStatus("CONFIRMED").WithPaymentStatus("PAID").BuildView()
		s.mockCommands.EXPECT().ReviewPayment(gomock.Any(), bookingID, true).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "PAID"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Status)
		s.Equal("PAID", response.PaymentStatus)
	})

	s.Run("success: rejection only settles the payment axis", func() {
		view := builder.NewBookingBuilder().WithPaymentStatus("REJECTED").BuildView()
		s.mockCommands.EXPECT().ReviewPayment(gomock.Any(), bookingID, false).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "REJECTED"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("PENDING", response.Status)
		s.Equal("REJECTED", response.PaymentStatus)
	})

	s.Run("error: 409 when reviewed twice", func() {
		s.mockCommands.EXPECT().ReviewPayment(gomock.Any(), bookingID, true).
			Return(nil, commands.ErrPaymentAlreadyReviewed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "PAID"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already")
	})

	s.Run("error: 400 on decision outside PAID/REJECTED", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "PENDING"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestAttachSlip() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/slip"
	slip := "https://cdn.example.com/slips/1.png"

	s.Run("success: attaches the slip", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		view.SlipURL = &slip
		s.mockCommands.EXPECT().AttachSlip(gomock.Any(), s.userID, bookingID, slip).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"slip_url": slip}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.SlipURL)
	})

	s.Run("error: 403 for non-owner", func() {
		s.mockCommands.EXPECT().AttachSlip(gomock.Any(), s.userID, bookingID, slip).
			Return(nil, commands.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"slip_url": slip}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 409 after review", func() {
		s.mockCommands.EXPECT().AttachSlip(gomock.Any(), s.userID, bookingID, slip).
			Return(nil, commands.ErrSlipLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"slip_url": slip}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 on non-url slip", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"slip_url": "not a url"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	s.Run("success: returns the caller's bookings", func() {
		mine := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingView{mine}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(s.userID, response[0].UserID)
	})
}
