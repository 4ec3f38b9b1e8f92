package middleware

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey  = "userId"
	isGuestKey = "isGuest"

	// GuestUserID is the principal used when no identity header is sent.
	GuestUserID = "guest"

	maxUserIDLen = 128
)

// Identity resolves the caller from X-User-Id and stores it in context.
// Requests without a usable header run as the shared guest principal.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		userID := normalizeUserID(c.GetHeader("X-User-Id"))
		if userID == "" {
			c.Set(userIDKey, GuestUserID)
			c.Set(isGuestKey, true)
		} else {
			c.Set(userIDKey, userID)
			c.Set(isGuestKey, false)
		}
		c.Next()
	}
}

// UserIDFromContext returns the caller resolved by Identity.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// IsGuest reports whether the request runs as the guest principal.
func IsGuest(c *gin.Context) bool {
	if c == nil {
		return true
	}
	val, ok := c.Get(isGuestKey)
	if !ok {
		return true
	}
	guest, _ := val.(bool)
	return guest
}

func normalizeUserID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxUserIDLen {
		return ""
	}
	if strings.ContainsFunc(id, func(r rune) bool {
		return unicode.IsControl(r) || unicode.IsSpace(r)
	}) {
		return ""
	}
	return id
}
