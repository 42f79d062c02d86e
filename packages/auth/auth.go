package auth

import (
	"time"

	"bab-insa-tournament/packages/auth/handlers"
	"bab-insa-tournament/packages/auth/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Config struct {
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	TokenExpiry       time.Duration
}

type Module struct {
	Handler *handlers.AuthHandler
	secret  []byte
}

func NewModule(cfg Config, logger *zap.Logger) *Module {
	secret := []byte(cfg.JWTSecret)
	credentials := handlers.Credentials{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
	}
	return &Module{
		Handler: handlers.NewAuthHandler(credentials, secret, cfg.TokenExpiry, logger),
		secret:  secret,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", m.Handler.Login)
		auth.GET("/me", m.JWTMiddleware(), m.Handler.Me)
	}
}

func (m *Module) JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.secret)
}

func RequireRole(role string) gin.HandlerFunc {
	return middleware.RequireRole(role)
}

func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return middleware.RequireAnyRole(roles...)
}
