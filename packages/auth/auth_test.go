package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bab-insa-tournament/packages/auth/models"
	"bab-insa-tournament/packages/auth/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *Module) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	m := NewModule(Config{
		JWTSecret:         testSecret,
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		TokenExpiry:       time.Hour,
	}, zap.NewNop())

	r := gin.New()
	m.SetupRoutes(r)
	r.GET("/admin-only", m.JWTMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, m
}

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(models.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name     string
		username string
		password string
		want     int
	}{
		{name: "valid credentials", username: "admin", password: "s3cret", want: http.StatusOK},
		{name: "wrong password", username: "admin", password: "nope", want: http.StatusUnauthorized},
		{name: "wrong username", username: "root", password: "s3cret", want: http.StatusUnauthorized},
		{name: "missing password", username: "admin", password: "", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := login(t, r, tt.username, tt.password)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestLogin_TokenGrantsAdminRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	w := login(t, r, "admin", "s3cret")
	require.Equal(t, http.StatusOK, w.Code)

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.Roles.Has(models.RoleAdmin))

	assert.Equal(t, http.StatusOK, get(r, "/admin-only", token.AccessToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/auth/me", token.AccessToken).Code)
}

func TestJWTMiddleware_Rejects(t *testing.T) {
	r, _ := newTestRouter(t)

	userToken, err := utils.GenerateToken([]byte(testSecret), "player", models.Roles{models.RoleUser}, time.Hour)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateToken([]byte("other-secret"), "admin", models.GetAdminRoles(), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin-only", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin-only", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin-only", foreignToken.AccessToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", userToken.AccessToken).Code)
}

func TestLogin_WithoutConfiguredAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewModule(Config{JWTSecret: testSecret}, zap.NewNop())
	r := gin.New()
	m.SetupRoutes(r)

	assert.Equal(t, http.StatusUnauthorized, login(t, r, "admin", "anything").Code)
}
