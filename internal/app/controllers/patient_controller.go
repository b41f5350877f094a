package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

// PatientController handles patient pages and clinical notes
type PatientController struct {
	patientService services.PatientService
	noteService    services.ClinicalNoteService
	logger         zerolog.Logger
}

// NewPatientController creates a new PatientController
func NewPatientController(patientService services.PatientService, noteService services.ClinicalNoteService, logger zerolog.Logger) *PatientController {
	return &PatientController{
		patientService: patientService,
		noteService:    noteService,
		logger:         logger,
	}
}

// List renders all patients ordered by last name
func (c *PatientController) List(ctx *gin.Context) {
	patients, err := c.patientService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	middleware.Render(ctx, http.StatusOK, "patients.html", gin.H{"Title": "Patients", "Patients": patients})
}

// View renders one patient with prescriptions and notes
func (c *PatientController) View(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.patientService.GetDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "view_patient.html", gin.H{
		"Title":         detail.Patient.FullName(),
		"Patient":       detail.Patient,
		"Prescriptions": detail.Prescriptions,
		"Notes":         detail.Notes,
	})
}

// AddPage renders the empty patient form
func (c *PatientController) AddPage(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "add_patient.html", gin.H{"Title": "Add Patient", "Form": dto.PatientForm{}})
}

// Add stores a patient or re-renders the form with the error flashed
func (c *PatientController) Add(ctx *gin.Context) {
	var form dto.PatientForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.addFailed(ctx, &form, middleware.BindingErrorText(err))
		return
	}

	if _, err := c.patientService.Add(ctx.Request.Context(), &form); err != nil {
		c.logger.Warn().Err(err).Str("patientID", form.PatientID).Msg("Failed to add patient")
		c.addFailed(ctx, &form, err.Error())
		return
	}

	flash.Add(ctx, flash.Success, "Patient added successfully")
	ctx.Redirect(http.StatusFound, "/patients")
}

func (c *PatientController) addFailed(ctx *gin.Context, form *dto.PatientForm, reason string) {
	flash.Add(ctx, flash.Danger, "Error adding patient: "+reason)
	middleware.Render(ctx, http.StatusOK, "add_patient.html", gin.H{"Title": "Add Patient", "Form": form})
}

// AddNote attaches a clinical note authored by the current user
func (c *PatientController) AddNote(ctx *gin.Context) {
	patientID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var form dto.ClinicalNoteForm
	if err := ctx.ShouldBind(&form); err != nil {
		flash.Add(ctx, flash.Danger, "Error adding note: "+middleware.BindingErrorText(err))
	} else if _, err := c.noteService.Add(ctx.Request.Context(), middleware.CurrentPrincipal(ctx), patientID, &form); err != nil {
		c.logger.Warn().Err(err).Int64("patientID", patientID).Msg("Failed to add clinical note")
		flash.Add(ctx, flash.Danger, "Error adding note: "+err.Error())
	} else {
		flash.Add(ctx, flash.Success, "Clinical note added successfully")
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/patient/%d", patientID))
}
