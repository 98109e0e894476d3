//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/psu6810110220/StoreGame/internal/handler/api"
	resdto "github.com/psu6810110220/StoreGame/internal/handler/dto/response"
	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
	"github.com/psu6810110220/StoreGame/tests/common/builder"
	"github.com/psu6810110220/StoreGame/tests/common/httptest"
	commandsmock "github.com/psu6810110220/StoreGame/tests/mock/commands"
	queriesmock "github.com/psu6810110220/StoreGame/tests/mock/queries"
)

type GameHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGameCommands
	mockQueries  *queriesmock.MockGameQueries
	handler      *api.GameHandler
}

func (s *GameHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGameCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGameQueries(s.mockCtrl)
	s.handler = api.NewGameHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/games", s.handler.ListGames)
	s.router.GET("/games/:id", s.handler.GetGame)
	s.router.POST("/games", s.handler.CreateGame)
	s.router.PATCH("/games/:id", s.handler.UpdateGame)
	s.router.DELETE("/games/:id", s.handler.DeleteGame)
}

func (s *GameHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameHandlerSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}

func (s *GameHandlerTestSuite) TestListGames() {
	views := []*queries.GameView{
		builder.NewGameBuilder().BuildView(),
		builder.NewGameBuilder().WithTitle("Azul").BuildView(),
	}
	s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/games", nil, "")

	var response []*resdto.GameResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 2)
}

func (s *GameHandlerTestSuite) TestCreateGame() {
	url := "/games"
	body := map[string]any{
		"title":          "Catan",
		"price_cents":    12000,
		"stock_quantity": 10,
	}

	s.Run("success: returns 201", func() {
		view := builder.NewGameBuilder().BuildView()
		s.mockCommands.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on invalid payloads", func() {
		invalid := []map[string]any{
			{"price_cents": 100, "stock_quantity": 1},
			{"title": "Catan", "price_cents": -1, "stock_quantity": 1},
			{"title": "Catan", "price_cents": 100, "stock_quantity": -1},
		}
		for _, b := range invalid {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b, "")
			s.Equal(http.StatusBadRequest, rec.Code, "body: %v", b)
		}
	})

	s.Run("error: 400 when the domain rejects the game", func() {
		s.mockCommands.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidGame).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"title": "   ", "price_cents": 100, "stock_quantity": 1,
		}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *GameHandlerTestSuite) TestUpdateGame() {
	gameID := uuid.New()
	url := "/games/" + gameID.String()

	s.Run("success: partial update", func() {
		view := builder.NewGameBuilder().WithStock(25).BuildView()
		s.mockCommands.EXPECT().UpdateGame(gomock.Any(), gameID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"stock_quantity": 25}, "")

		var response resdto.GameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(25), response.StockQuantity)
	})

	s.Run("error: 404 on unknown game", func() {
		s.mockCommands.EXPECT().UpdateGame(gomock.Any(), gameID, gomock.Any()).
			Return(nil, commands.ErrGameMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"stock_quantity": 25}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *GameHandlerTestSuite) TestDeleteGame() {
	gameID := uuid.New()
	url := "/games/" + gameID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteGame(gomock.Any(), gameID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when bookings reference the game", func() {
		s.mockCommands.EXPECT().DeleteGame(gomock.Any(), gameID).
			Return(commands.ErrGameInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
