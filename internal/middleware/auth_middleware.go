package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

// Context keys set by SessionAuth
const (
	ContextPrincipalKey = "principal"
	ContextClaimsKey    = "claims"
)

// Redirect targets of the auth gate
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// TeacherRequiredMessage is flashed when a student opens a teacher-only page
const TeacherRequiredMessage = "You need to be a teacher to access this page."

// Authenticator validates a session token
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*appauth.Principal, *auth.Claims, error)
}

// AuthMiddleware gates pages behind the session cookie
type AuthMiddleware struct {
	authenticator Authenticator
	cookieName    string
	logger        zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authenticator Authenticator, cookieName string, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		cookieName:    cookieName,
		logger:        logger,
	}
}

// CookieName returns the session cookie name
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// SessionAuth redirects to the login page unless the request carries a valid session cookie
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		principal, claims, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenRevoked):
				m.logger.Debug().Err(err).Msg("Session no longer valid")
			case errors.Is(err, apperrors.ErrTokenInvalid):
				m.logger.Warn().Err(err).Str("ip", c.ClientIP()).Msg("Invalid session cookie")
			default:
				m.logger.Error().Err(err).Msg("Session check failed")
			}
			c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// TeacherRequired sends non-teachers back to the dashboard with a flash message
func (m *AuthMiddleware) TeacherRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := appauth.ValidateTeacher(CurrentPrincipal(c)); err != nil {
			flash.Add(c, flash.Danger, TeacherRequiredMessage)
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the user attached by SessionAuth, or nil
func CurrentPrincipal(c *gin.Context) *appauth.Principal {
	v, ok := c.Get(ContextPrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*appauth.Principal)
	return p
}

// CurrentClaims returns the session claims attached by SessionAuth, or nil
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
