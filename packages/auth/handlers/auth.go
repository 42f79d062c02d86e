package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"bab-insa-tournament/packages/auth/middleware"
	"bab-insa-tournament/packages/auth/models"
	"bab-insa-tournament/packages/auth/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Credentials describe the single administrator account.
type Credentials struct {
	Username     string
	PasswordHash string
}

type AuthHandler struct {
	credentials Credentials
	secret      []byte
	tokenExpiry time.Duration
	logger      *zap.Logger
}

func NewAuthHandler(credentials Credentials, secret []byte, tokenExpiry time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		secret:      secret,
		tokenExpiry: tokenExpiry,
		logger:      logger,
	}
}

// @Summary Admin Login
// @Description Login with the administrator credentials to get a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Administrator credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.credentials.Username == "" || h.credentials.PasswordHash == "" {
		h.logger.Warn("login attempted without configured administrator")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.credentials.Username)) == 1
	passwordOK := utils.CheckPassword(req.Password, h.credentials.PasswordHash)
	if !usernameOK || !passwordOK {
		h.logger.Info("rejected login", zap.String("username", req.Username), zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(h.secret, h.credentials.Username, models.GetAdminRoles(), h.tokenExpiry)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.logger.Info("administrator logged in", zap.String("username", h.credentials.Username))
	c.JSON(http.StatusOK, token)
}

// @Summary Current session
// @Description Get the claims of the presented token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":   claims.Username,
		"roles":      claims.Roles,
		"expires_at": claims.ExpiresAt,
	})
}
