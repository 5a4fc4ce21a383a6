package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// TokenMatcher reports whether a presented bearer token is acceptable.
type TokenMatcher func(presented string) bool

// NewTokenMatcher builds a matcher for the configured admin token. A bcrypt
// hash is compared with bcrypt, anything else in constant time.
func NewTokenMatcher(configured string) TokenMatcher {
	if isBcryptHash(configured) {
		hash := []byte(configured)
		return func(presented string) bool {
			return bcrypt.CompareHashAndPassword(hash, []byte(presented)) == nil
		}
	}
	expected := []byte(configured)
	return func(presented string) bool {
		return subtle.ConstantTimeCompare([]byte(presented), expected) == 1
	}
}

// AdminTokenRequired rejects requests whose bearer token does not match token.
func AdminTokenRequired(token string) gin.HandlerFunc {
	match := NewTokenMatcher(token)
	return func(c *gin.Context) {
		got := extractToken(c)
		if got == "" || !match(got) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func isBcryptHash(s string) bool {
	if _, err := bcrypt.Cost([]byte(s)); err != nil {
		return false
	}
	return strings.HasPrefix(s, "$2")
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
