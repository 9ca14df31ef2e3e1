package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dozzze-checkout/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionIDKey = "session_id"
	ctxAuthTokenKey = "auth_token"
)

// TokenValidator verifies a session token and yields its session id and
// expiry.
type TokenValidator interface {
	Validate(token string) (uuid.UUID, time.Time, error)
}

// SessionToucher records the token expiry for the liveness sweep.
type SessionToucher interface {
	Touch(ctx context.Context, sessionID uuid.UUID, tokenExpiry time.Time)
}

type AuthMiddleware struct {
	validator TokenValidator
	toucher   SessionToucher
}

func NewAuthMiddleware(validator TokenValidator, toucher SessionToucher) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		toucher:   toucher,
	}
}

// RequireSession binds the request to a verified session. The raw bearer
// token is kept in the context because submission and reservation lookups
// forward it upstream unchanged.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Session token required", nil)
			return
		}

		sessionID, expiry, err := m.validator.Validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session token", nil)
			return
		}

		if m.toucher != nil {
			m.toucher.Touch(c.Request.Context(), sessionID, expiry)
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Set(ctxAuthTokenKey, token)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := sessionID.(uuid.UUID)
	return id, ok
}

func GetAuthToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(ctxAuthTokenKey)
	if !exists {
		return "", false
	}

	t, ok := token.(string)
	return t, ok
}
