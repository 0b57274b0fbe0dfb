package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleetbook/internal/domain/member"
	"fleetbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxMemberIDKey   = "member_id"
	ctxMemberRoleKey = "member_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		memberID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxMemberIDKey, memberID)
		c.Set(ctxMemberRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"member_id": memberID.String(),
			"role":      role.String(),
		})
		c.Next()
	}
}

// RequireAdmin gates the fleet management endpoints; runs after
// RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetMemberRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != member.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetMemberID(c *gin.Context) (uuid.UUID, bool) {
	memberID, exists := c.Get(ctxMemberIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := memberID.(uuid.UUID)
	return id, ok
}

func GetMemberRole(c *gin.Context) (member.Role, bool) {
	memberRole, exists := c.Get(ctxMemberRoleKey)
	if !exists {
		return "", false
	}

	role, ok := memberRole.(member.Role)
	return role, ok
}
