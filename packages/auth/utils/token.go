package utils

import (
	"errors"
	"fmt"
	"time"

	"bab-insa-tournament/packages/auth/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenExpiry = 12 * time.Hour
	issuer            = "bab-insa-tournament"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs an HS256 access token for username.
func GenerateToken(secret []byte, username string, roles models.Roles, expiry time.Duration) (*models.TokenResponse, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}
	if expiry <= 0 {
		expiry = AccessTokenExpiry
	}

	now := time.Now()
	claims := models.Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int64(expiry.Seconds()),
		TokenType:   "Bearer",
		Username:    username,
		Roles:       roles,
	}, nil
}

// ParseToken verifies signature, issuer and expiry and returns the claims.
func ParseToken(secret []byte, tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
