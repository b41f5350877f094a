package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

// FeedServer upgrades a request to the approval feed websocket
type FeedServer interface {
	Serve(w http.ResponseWriter, r *http.Request, userID int64) error
}

// PrescriptionController handles the prescription workflow pages
type PrescriptionController struct {
	prescriptionService services.PrescriptionService
	feed                FeedServer
	logger              zerolog.Logger
}

// NewPrescriptionController creates a new PrescriptionController
func NewPrescriptionController(prescriptionService services.PrescriptionService, feed FeedServer, logger zerolog.Logger) *PrescriptionController {
	return &PrescriptionController{
		prescriptionService: prescriptionService,
		feed:                feed,
		logger:              logger,
	}
}

// List renders the prescriptions visible to the current user
func (c *PrescriptionController) List(ctx *gin.Context) {
	rxs, err := c.prescriptionService.List(ctx.Request.Context(), middleware.CurrentPrincipal(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.Render(ctx, http.StatusOK, "prescriptions.html", gin.H{"Title": "Prescriptions", "Prescriptions": rxs})
}

// CreatePage renders the prescription form
func (c *PrescriptionController) CreatePage(ctx *gin.Context) {
	c.renderForm(ctx, &dto.PrescriptionForm{})
}

// Create stores a prescription and its items
func (c *PrescriptionController) Create(ctx *gin.Context) {
	var form dto.PrescriptionForm
	reason := ""
	if err := ctx.ShouldBind(&form); err != nil {
		reason = middleware.BindingErrorText(err)
	} else if _, err := c.prescriptionService.Create(ctx.Request.Context(), middleware.CurrentPrincipal(ctx), &form); err != nil {
		c.logger.Warn().Err(err).Str("patientID", form.PatientID).Msg("Failed to create prescription")
		reason = err.Error()
	}

	if reason != "" {
		flash.Add(ctx, flash.Danger, "Error creating prescription: "+reason)
		c.renderForm(ctx, &form)
		return
	}

	flash.Add(ctx, flash.Success, "Prescription created successfully")
	ctx.Redirect(http.StatusFound, "/prescriptions")
}

func (c *PrescriptionController) renderForm(ctx *gin.Context, form *dto.PrescriptionForm) {
	opts, err := c.prescriptionService.FormOptions(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.Render(ctx, http.StatusOK, "create_prescription.html", gin.H{
		"Title":       "Create Prescription",
		"Patients":    opts.Patients,
		"Medications": opts.Medications,
		"Form":        form,
	})
}

// Approve marks a prescription approved
func (c *PrescriptionController) Approve(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if _, err := c.prescriptionService.Approve(ctx.Request.Context(), middleware.CurrentPrincipal(ctx), id); err != nil {
		if errors.Is(err, apperrors.ErrTeacherRequired) {
			flash.Add(ctx, flash.Danger, middleware.TeacherRequiredMessage)
			ctx.Redirect(http.StatusFound, middleware.HomePath)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	flash.Add(ctx, flash.Success, "Prescription approved")
	ctx.Redirect(http.StatusFound, "/prescriptions")
}

// View renders a prescription with its items
func (c *PrescriptionController) View(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	rx, err := c.prescriptionService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.Render(ctx, http.StatusOK, "view_prescription.html", gin.H{
		"Title":        fmt.Sprintf("Prescription #%d", rx.ID),
		"Prescription": rx,
	})
}

// PDF streams the printable prescription
func (c *PrescriptionController) PDF(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	doc, err := c.prescriptionService.RenderPDF(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=prescription_%d.pdf", id))
	ctx.Data(http.StatusOK, "application/pdf", doc)
}

// Feed upgrades the connection to the live approval feed
func (c *PrescriptionController) Feed(ctx *gin.Context) {
	p := middleware.CurrentPrincipal(ctx)
	if err := c.feed.Serve(ctx.Writer, ctx.Request, p.UserID); err != nil {
		c.logger.Warn().Err(err).Int64("userID", p.UserID).Msg("Approval feed connection rejected")
	}
}
