package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/models"
)

// AuthClaimsKey is the key used to store JWT claims in gin context
const AuthClaimsKey = "auth_claims"

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required", "")
			return
		}

		// Check Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			abortUnauthorized(c, "Invalid authorization header format", "")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", err.Error())
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   message,
		Code:    http.StatusUnauthorized,
		Details: details,
	})
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	typed, _ := claims.(*Claims)
	return typed
}

// UserID returns the authenticated user's id, or "" when unauthenticated
func UserID(c *gin.Context) string {
	if claims := GetAuthClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}
