package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	authpkg "github.com/medibook/hospital-api/pkg/auth"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// TokenValidator verifies a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*authpkg.TokenClaims, error)
}

// AuthMiddleware guards routes behind bearer-token authentication.
// Validated tokens are cached for a short TTL to skip repeated signature
// checks on chatty clients.
type AuthMiddleware struct {
	validator TokenValidator
	cache     *cache.Cache
}

func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		cache:     cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			m.abort(c)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			m.abort(c)
			return
		}

		if cached, ok := m.cache.Get(token); ok {
			m.setIdentity(c, cached.(*authpkg.TokenClaims))
			c.Next()
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			m.abort(c)
			return
		}

		m.cache.SetDefault(token, claims)
		m.setIdentity(c, claims)
		c.Next()
	}
}

func (m *AuthMiddleware) setIdentity(c *gin.Context, claims *authpkg.TokenClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserEmail, claims.Email)
}

func (m *AuthMiddleware) abort(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": "unauthorized",
	})
}
