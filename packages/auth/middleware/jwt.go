package middleware

import (
	"net/http"
	"strings"

	"bab-insa-tournament/packages/auth/models"
	"bab-insa-tournament/packages/auth/utils"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey   = "claims"
	usernameKey = "username"
	rolesKey    = "user_roles"
)

// JWTMiddleware rejects requests without a valid "Bearer <token>" header and
// stores the token claims on the context.
func JWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(usernameKey, claims.Username)
		c.Set(rolesKey, claims.Roles)
		c.Next()
	}
}

func GetClaims(c *gin.Context) (*models.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.Claims)
	return claims, ok
}
