package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

// UserController lets teachers create accounts
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

// AddPage renders the account form
func (c *UserController) AddPage(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "add_user.html", gin.H{"Title": "Add User", "Username": "", "Role": string(models.RoleStudent)})
}

// Add creates a teacher or student account
func (c *UserController) Add(ctx *gin.Context) {
	var form dto.UserForm
	reason := ""
	if err := ctx.ShouldBind(&form); err != nil {
		reason = middleware.BindingErrorText(err)
	} else if _, err := c.userService.Create(ctx.Request.Context(), form.Username, form.Password, models.RoleType(form.Role)); err != nil {
		c.logger.Warn().Err(err).Str("username", form.Username).Msg("Failed to add user")
		reason = err.Error()
	}

	if reason != "" {
		flash.Add(ctx, flash.Danger, "Error adding user: "+reason)
		middleware.Render(ctx, http.StatusOK, "add_user.html", gin.H{"Title": "Add User", "Username": form.Username, "Role": form.Role})
		return
	}

	flash.Add(ctx, flash.Success, fmt.Sprintf("User %s added successfully", form.Username))
	ctx.Redirect(http.StatusFound, middleware.HomePath)
}
