package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SharerHeader carries the caller identity forwarded by the gateway.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

type IdentityMiddleware struct {
	jwtSecret []byte
}

func NewIdentityMiddleware(cfg config.AuthConfig) *IdentityMiddleware {
	return &IdentityMiddleware{
		jwtSecret: []byte(cfg.JWTSecret),
	}
}

// RequireIdentity resolves the caller from the X-Sharer-User-Id header, or
// from a Bearer token carrying a user_id claim when the header is absent.
// Identity here is identification only; whether the user exists is checked
// by the use cases.
func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(SharerHeader); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid " + SharerHeader + " header",
				})
				c.Abort()
				return
			}
			c.Set(ctxUserIDKey, userID)
			c.Next()
			return
		}

		if userID, ok := m.fromBearerToken(c); ok {
			c.Set(ctxUserIDKey, userID)
			c.Next()
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error": SharerHeader + " header is required",
		})
		c.Abort()
	}
}

func (m *IdentityMiddleware) fromBearerToken(c *gin.Context) (uuid.UUID, bool) {
	if len(m.jwtSecret) == 0 {
		return uuid.Nil, false
	}

	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return uuid.Nil, false
	}
	tokenStr := strings.TrimSpace(authHeader[len("Bearer "):])

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		slog.Warn("Bearer token validation failed", "error", err)
		return uuid.Nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	raw, ok := claims[ctxUserIDKey].(string)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := raw.(uuid.UUID)
	return id, ok
}
