package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

const invalidCredentialsMessage = "Invalid username or password"

// AuthController handles login and logout
type AuthController struct {
	sessions     services.SessionService
	cookieName   string
	secureCookie bool
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions services.SessionService, cookieName string, secureCookie bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		sessions:     sessions,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// LoginPage renders the login form
func (c *AuthController) LoginPage(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login checks the credentials and sets the session cookie
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		flash.Add(ctx, flash.Danger, invalidCredentialsMessage)
		ctx.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	sess, _, err := c.sessions.Login(ctx.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.logger.Error().Err(err).Str("username", form.Username).Msg("Login failed")
		}
		flash.Add(ctx, flash.Danger, invalidCredentialsMessage)
		ctx.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, sess.Token, services.SessionTTLRemaining(sess), "/", "", c.secureCookie, true)
	ctx.Redirect(http.StatusFound, middleware.HomePath)
}

// Logout revokes the session and clears the cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.sessions.Logout(ctx.Request.Context(), middleware.CurrentClaims(ctx)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to revoke session")
	}

	ctx.SetCookie(c.cookieName, "", -1, "/", "", c.secureCookie, true)
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}
