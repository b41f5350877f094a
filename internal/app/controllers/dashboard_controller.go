package controllers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
)

// DashboardController renders the landing page
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

// Index shows the counters and the two charts
func (c *DashboardController) Index(ctx *gin.Context) {
	d, err := c.dashboardService.Build(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build dashboard")
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "dashboard.html", gin.H{
		"Title": "Dashboard",
		"Stats": d.Stats,
		// Chart JSON is produced by encoding/json and embedded in a script block.
		"GenderChart":     template.JS(d.GenderChart),
		"DosageFormChart": template.JS(d.DosageFormChart),
	})
}
