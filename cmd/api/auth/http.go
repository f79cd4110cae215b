package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// IdentityFromHeader resolves the caller's identity from the Authorization
// header. An absent or undecodable token yields a zero Identity and ok=false
// rather than an error: mutation operations decide for themselves whether an
// anonymous caller is acceptable (a missing post must report 404 before a
// missing login reports 401).
func IdentityFromHeader(c *gin.Context) (Identity, bool) {
	token, err := ExtractBearerToken(c)
	if err != nil {
		return Identity{}, false
	}
	identity, err := Parse(token)
	if err != nil {
		return Identity{}, false
	}
	return identity, true
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
}
