package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bab-insa-tournament/packages/core/metrics"
	"bab-insa-tournament/packages/core/models"
	"bab-insa-tournament/packages/core/services"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(tournamentService *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

func parseMatchNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("matchNumber"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match number"})
		return 0, false
	}
	return n, true
}

// GenerateBracket builds a new bracket from the roster
// @Summary Generate the bracket
// @Description Replace the bracket with player-disjoint matches built from every registered player (admin only)
// @Tags tournament
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.GenerateBracketResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournament/generate [post]
func (h *TournamentHandler) GenerateBracket(c *gin.Context) {
	result, err := h.tournamentService.GenerateBracket(c.Request.Context(), metrics.TriggerManual)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate bracket"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetBracket lists the current matches
// @Summary Get the bracket
// @Description Get every remaining match in display order
// @Tags tournament
// @Produce json
// @Success 200 {array} models.Match
// @Failure 500 {object} map[string]string
// @Router /api/tournament [get]
func (h *TournamentHandler) GetBracket(c *gin.Context) {
	matches, err := h.tournamentService.GetBracket(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bracket"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch gets one match by number
// @Summary Get match by number
// @Description Get a match and its remaining games
// @Tags tournament
// @Produce json
// @Param matchNumber path int true "Match number"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournament/matches/{matchNumber} [get]
func (h *TournamentHandler) GetMatch(c *gin.Context) {
	n, ok := parseMatchNumber(c)
	if !ok {
		return
	}

	match, err := h.tournamentService.GetMatch(c.Request.Context(), n)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, match)
}

// RemoveGame removes a played game from a match
// @Summary Remove a game from a match
// @Description Remove "Game 1" or "Game 2" from a match. The match is deleted once both games are gone. Other labels change nothing and report removed=false.
// @Tags tournament
// @Accept json
// @Produce json
// @Param matchNumber path int true "Match number"
// @Param game body models.RemoveGameRequest true "Game label"
// @Success 200 {object} models.RemoveGameResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournament/matches/{matchNumber}/remove-game [patch]
func (h *TournamentHandler) RemoveGame(c *gin.Context) {
	n, ok := parseMatchNumber(c)
	if !ok {
		return
	}

	var req models.RemoveGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.tournamentService.RemoveGame(c.Request.Context(), n, req.Game)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove game"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClearBracket deletes every match
// @Summary Clear the bracket
// @Description Delete every match (admin only)
// @Tags tournament
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournament [delete]
func (h *TournamentHandler) ClearBracket(c *gin.Context) {
	if err := h.tournamentService.ClearBracket(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear bracket"})
		return
	}

	c.Status(http.StatusNoContent)
}
