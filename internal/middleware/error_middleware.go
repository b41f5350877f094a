package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

// ErrorTemplate is rendered for not-found and unexpected failures
const ErrorTemplate = "error.html"

// Render executes a page template with the data every layout needs:
// the current user and the pending flash messages.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = CurrentPrincipal(c)
	data["Flashes"] = flash.Pop(c)
	c.HTML(status, name, data)
}

// HandlePageError renders the error page for err. Not-found sentinels become a 404,
// everything else a 500 without details.
func HandlePageError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again."
	if apperrors.IsNotFound(err) {
		status = http.StatusNotFound
		message = "The page you requested could not be found."
	}

	Render(c, status, ErrorTemplate, gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}

// NotFound handles unmatched routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandlePageError(c, apperrors.ErrResourceNotFound)
	}
}
