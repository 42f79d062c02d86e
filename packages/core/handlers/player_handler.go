package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bab-insa-tournament/packages/core/models"
	"bab-insa-tournament/packages/core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

func parsePlayerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return 0, false
	}
	return uint(id), true
}

// CreatePlayer registers a player
// @Summary Register a player
// @Description Add a player to the roster with zeroed wins, losses and points
// @Tags players
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player name"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player name is required"})
		return
	}

	player, err := h.playerService.CreatePlayer(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlayerNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player name is required"})
		case errors.Is(err, services.ErrPlayerNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Player name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer retrieves a player by ID
// @Summary Get player by ID
// @Description Get player information by player ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parsePlayerID(c)
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayerScore records a game result for a player
// @Summary Update player score
// @Description Count a win or a loss and add points to the player's total
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param score body models.UpdateScoreRequest true "Result (win or loss) and points"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players/{id}/update [put]
func (h *PlayerHandler) UpdatePlayerScore(c *gin.Context) {
	id, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req models.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayerScore(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating player score"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetAllPlayers retrieves all players with pagination and sorting
// @Summary Get all players
// @Description Get all players with pagination and sorting options
// @Tags players
// @Produce json
// @Param orderBy query string false "Sort field: 'created_at', 'name', 'wins', 'losses', 'total_points' (default: 'created_at')"
// @Param direction query string false "Sort direction: 'ASC' or 'DESC' (default: 'DESC')"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Number of players per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	orderBy := c.DefaultQuery("orderBy", "created_at")
	direction := c.DefaultQuery("direction", "DESC")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid page parameter",
		})
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pageSize parameter",
		})
		return
	}

	if pageSize > 100 {
		pageSize = 100
	}

	paginatedResponse, err := h.playerService.GetAllPlayers(c.Request.Context(), orderBy, direction, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve players",
		})
		return
	}

	c.JSON(http.StatusOK, paginatedResponse)
}

// ClearRoster deletes every player
// @Summary Clear the roster
// @Description Delete every registered player (admin only). The current bracket is kept.
// @Tags players
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players [delete]
func (h *PlayerHandler) ClearRoster(c *gin.Context) {
	if err := h.playerService.ClearRoster(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear roster"})
		return
	}

	c.Status(http.StatusNoContent)
}
