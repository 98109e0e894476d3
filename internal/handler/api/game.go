package api

import (
	"errors"
	"net/http"

	reqdto "github.com/psu6810110220/StoreGame/internal/handler/dto/request"
	resdto "github.com/psu6810110220/StoreGame/internal/handler/dto/response"
	"github.com/psu6810110220/StoreGame/internal/handler/httperr"
	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/usecase/commands"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GameHandler struct {
	gameCommands commands.GameCommands
	gameQueries  queries.GameQueries
}

func NewGameHandler(gameCommands commands.GameCommands, gameQueries queries.GameQueries) *GameHandler {
	return &GameHandler{
		gameCommands: gameCommands,
		gameQueries:  gameQueries,
	}
}

// @Summary List games
// @Description Get the full game catalog
// @Tags games
// @Produce json
// @Success 200 {array} resdto.GameResponse
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	views, err := h.gameQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameViews(views))
}

// @Summary Get game
// @Description Get a game by ID
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, ok := h.gameIDParam(c)
	if !ok {
		return
	}

	view, err := h.gameQueries.GetByID(c.Request.Context(), gameID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameView(view))
}

// @Summary Create game
// @Description Add a game to the catalog
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGameRequest true "Game"
// @Success 201 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req reqdto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.gameCommands.CreateGame(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidGame) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid game data",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGameView(view))
}

// @Summary Update game
// @Description Partially update a game; absent fields are kept
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param request body reqdto.UpdateGameRequest true "Fields to change"
// @Success 200 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [patch]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	gameID, ok := h.gameIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.gameCommands.UpdateGame(c.Request.Context(), gameID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGameMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		case errors.Is(err, commands.ErrInvalidGame):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid game data",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameView(view))
}

// @Summary Delete game
// @Description Remove a game that has no bookings
// @Tags games
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	gameID, ok := h.gameIDParam(c)
	if !ok {
		return
	}

	if err := h.gameCommands.DeleteGame(c.Request.Context(), gameID); err != nil {
		switch {
		case errors.Is(err, commands.ErrGameMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		case errors.Is(err, commands.ErrGameInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Game is referenced by bookings",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GameHandler) gameIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
