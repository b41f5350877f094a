// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
)

// idParam parses a positive integer path parameter. On failure it renders
// the not-found page and returns false, mirroring an unmatched <int:id> route.
func idParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandlePageError(ctx, apperrors.ErrResourceNotFound)
		return 0, false
	}
	return id, true
}
