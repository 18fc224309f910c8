package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// ErrAdminUnauthorized is returned by an AdminAuthorizer that rejects a request
var ErrAdminUnauthorized = errors.New("admin authorization required")

// AdminAuthorizer decides whether a request may read admin-only data
type AdminAuthorizer interface {
	Authorize(c *gin.Context) error
}

// TokenAuthorizer accepts requests carrying "Authorization: Bearer <token>".
// With an empty token every request is allowed and a warning is logged once.
type TokenAuthorizer struct {
	token    string
	warnOnce sync.Once
}

// NewTokenAuthorizer creates a bearer-token authorizer
func NewTokenAuthorizer(token string) *TokenAuthorizer {
	return &TokenAuthorizer{token: token}
}

// Authorize implements AdminAuthorizer
func (a *TokenAuthorizer) Authorize(c *gin.Context) error {
	if a.token == "" {
		a.warnOnce.Do(func() {
			logging.GetGlobalLogger().Warn("ADMIN_TOKEN is not set, admin endpoints are publicly readable")
		})
		return nil
	}

	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(a.token)) != 1 {
		return ErrAdminUnauthorized
	}
	return nil
}

// AdminMiddleware handles admin-only authorization
type AdminMiddleware struct {
	authorizer AdminAuthorizer
}

// NewAdminMiddleware creates a new admin middleware
func NewAdminMiddleware(authorizer AdminAuthorizer) *AdminMiddleware {
	return &AdminMiddleware{authorizer: authorizer}
}

// RequireAdmin aborts with 401 unless the authorizer accepts the request
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authorizer.Authorize(c); err != nil {
			logging.GetGlobalLogger().Warn("Admin access denied for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse(common.ErrMsgUnauthorized))
			return
		}
		c.Next()
	}
}
