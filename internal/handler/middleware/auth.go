package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rental-market/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxActorIDKey = "actor_id"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the caller identity from a bearer token. Every
// market operation keys its ownership and renter checks off this id.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		actorID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorIDKey, actorID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetActorID returns the authenticated caller id from context.
func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	actorID, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := actorID.(uuid.UUID)
	return id, ok
}
