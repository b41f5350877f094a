package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

// MedicationController handles the medication inventory pages
type MedicationController struct {
	medicationService services.MedicationService
	logger            zerolog.Logger
}

// NewMedicationController creates a new MedicationController
func NewMedicationController(medicationService services.MedicationService, logger zerolog.Logger) *MedicationController {
	return &MedicationController{medicationService: medicationService, logger: logger}
}

// List renders the inventory and the low-stock panel
func (c *MedicationController) List(ctx *gin.Context) {
	all, low, err := c.medicationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.Render(ctx, http.StatusOK, "medications.html", gin.H{
		"Title":       "Medications",
		"Medications": all,
		"LowStock":    low,
	})
}

// AddPage renders the empty medication form
func (c *MedicationController) AddPage(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "add_medication.html", gin.H{"Title": "Add Medication", "Form": dto.MedicationForm{}})
}

// Add stores a medication or re-renders the form with the error flashed
func (c *MedicationController) Add(ctx *gin.Context) {
	var form dto.MedicationForm
	reason := ""
	if err := ctx.ShouldBind(&form); err != nil {
		reason = middleware.BindingErrorText(err)
	} else if _, err := c.medicationService.Add(ctx.Request.Context(), &form); err != nil {
		c.logger.Warn().Err(err).Str("name", form.Name).Msg("Failed to add medication")
		reason = err.Error()
	}

	if reason != "" {
		flash.Add(ctx, flash.Danger, "Error adding medication: "+reason)
		middleware.Render(ctx, http.StatusOK, "add_medication.html", gin.H{"Title": "Add Medication", "Form": form})
		return
	}

	flash.Add(ctx, flash.Success, "Medication added successfully")
	ctx.Redirect(http.StatusFound, "/medications")
}
