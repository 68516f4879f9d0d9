package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cisnebranco/grooming-os/internal/config"
	domain "github.com/cisnebranco/grooming-os/internal/domain/order"
	"github.com/cisnebranco/grooming-os/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextGroomerID = "groomerID"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		role, _ := claims["role"].(string)
		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)

		// Present only for groomer-scoped accounts.
		if groomerID, ok := claims["groomerId"].(float64); ok && groomerID > 0 {
			c.Set(ContextGroomerID, uint(groomerID))
		}

		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the allow
// list. Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}

// PrincipalFromContext rebuilds the caller's identity from values set by
// AuthMiddleware.
func PrincipalFromContext(c *gin.Context) domain.Principal {
	p := domain.Principal{
		UserID: c.GetUint(ContextUserID),
		Role:   models.UserRole(c.GetString(ContextUserRole)),
	}
	if v, ok := c.Get(ContextGroomerID); ok {
		if id, ok := v.(uint); ok {
			p.GroomerID = &id
		}
	}
	return p
}
