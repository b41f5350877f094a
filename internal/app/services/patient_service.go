package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/repositories"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/helpers"
)

// PatientDetail is everything the patient page shows
type PatientDetail struct {
	Patient       *models.Patient
	Prescriptions []*models.Prescription
	Notes         []*models.ClinicalNote
}

// PatientService defines patient operations
type PatientService interface {
	List(ctx context.Context) ([]*models.Patient, error)
	GetDetail(ctx context.Context, id int64) (*PatientDetail, error)
	Add(ctx context.Context, form *dto.PatientForm) (*models.Patient, error)
}

type patientServiceImpl struct {
	patientRepo      repositories.IPatientRepository
	prescriptionRepo repositories.IPrescriptionRepository
	noteRepo         repositories.IClinicalNoteRepository
	logger           zerolog.Logger
}

// NewPatientService creates a new PatientService
func NewPatientService(
	patientRepo repositories.IPatientRepository,
	prescriptionRepo repositories.IPrescriptionRepository,
	noteRepo repositories.IClinicalNoteRepository,
	logger zerolog.Logger,
) PatientService {
	return &patientServiceImpl{
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
		noteRepo:         noteRepo,
		logger:           logger,
	}
}

// List returns all patients ordered by last name
func (s *patientServiceImpl) List(ctx context.Context) ([]*models.Patient, error) {
	return s.patientRepo.ListByLastName(ctx)
}

// GetDetail loads a patient with prescriptions and notes, both newest first
func (s *patientServiceImpl) GetDetail(ctx context.Context, id int64) (*PatientDetail, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prescriptions, err := s.prescriptionRepo.ListByPatient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading prescriptions: %w", err)
	}

	notes, err := s.noteRepo.ListByPatient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading clinical notes: %w", err)
	}

	return &PatientDetail{Patient: patient, Prescriptions: prescriptions, Notes: notes}, nil
}

// Add validates the form and stores a new patient
func (s *patientServiceImpl) Add(ctx context.Context, form *dto.PatientForm) (*models.Patient, error) {
	dob, err := helpers.ParseDate(form.DOB)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	patient := &models.Patient{
		PatientID:      strings.TrimSpace(form.PatientID),
		FirstName:      strings.TrimSpace(form.FirstName),
		LastName:       strings.TrimSpace(form.LastName),
		DOB:            dob,
		Gender:         strings.TrimSpace(form.Gender),
		BloodType:      helpers.NullString(form.BloodType),
		Allergies:      helpers.NullString(form.Allergies),
		MedicalHistory: helpers.NullString(form.MedicalHistory),
	}

	id, err := s.patientRepo.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = id

	s.logger.Info().Int64("id", id).Str("patientID", patient.PatientID).Msg("Patient added")
	return patient, nil
}
