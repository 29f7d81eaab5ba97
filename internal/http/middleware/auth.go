package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	adminKey = "admin"
	tokenKey = "admin.token"
)

// Authenticator resolves a bearer token to the admin identity. It returns an
// error for unknown, revoked or expired tokens.
type Authenticator func(ctx context.Context, token string) (string, error)

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAdmin rejects requests without a valid admin bearer token with 401.
// On success the admin e-mail and token are stored for AdminFrom/TokenFrom.
func RequireAdmin(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			unauthorized(c, "missing bearer token")
			return
		}
		who, err := authn(c.Request.Context(), token)
		if err != nil {
			LoggerFrom(c).Debug().Err(err).Msg("admin token rejected")
			unauthorized(c, "invalid or expired token")
			return
		}
		c.Set(adminKey, who)
		c.Set(tokenKey, token)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"message":    msg,
	})
}

// AdminFrom returns the authenticated admin e-mail, or "".
func AdminFrom(c *gin.Context) string {
	v, _ := c.Get(adminKey)
	return asString(v)
}

// TokenFrom returns the bearer token accepted by RequireAdmin, or "".
func TokenFrom(c *gin.Context) string {
	v, _ := c.Get(tokenKey)
	return asString(v)
}
