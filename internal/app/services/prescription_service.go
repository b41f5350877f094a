package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/repositories"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/helpers"
	"github.com/yigit/pharmalab/internal/pkg/pdf"
)

// PrescriptionFormOptions are the choices offered by the create form
type PrescriptionFormOptions struct {
	Patients    []*models.Patient
	Medications []*models.Medication
}

// PrescriptionService defines the prescription workflow
type PrescriptionService interface {
	Create(ctx context.Context, prescriber *appauth.Principal, form *dto.PrescriptionForm) (*models.Prescription, error)
	Approve(ctx context.Context, approver *appauth.Principal, id int64) (*models.Prescription, error)
	List(ctx context.Context, viewer *appauth.Principal) ([]*models.Prescription, error)
	Get(ctx context.Context, id int64) (*models.Prescription, error)
	FormOptions(ctx context.Context) (*PrescriptionFormOptions, error)
	RenderPDF(ctx context.Context, id int64) ([]byte, error)
}

type prescriptionServiceImpl struct {
	prescriptionRepo repositories.IPrescriptionRepository
	patientRepo      repositories.IPatientRepository
	medicationRepo   repositories.IMedicationRepository
	events           EventPublisher
	metrics          PrescriptionMetrics
	logger           zerolog.Logger
	now              func() time.Time
}

// NewPrescriptionService creates a new PrescriptionService. events and metrics may be nil.
func NewPrescriptionService(
	prescriptionRepo repositories.IPrescriptionRepository,
	patientRepo repositories.IPatientRepository,
	medicationRepo repositories.IMedicationRepository,
	events EventPublisher,
	metrics PrescriptionMetrics,
	logger zerolog.Logger,
) PrescriptionService {
	if events == nil {
		events = noopPublisher{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &prescriptionServiceImpl{
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		medicationRepo:   medicationRepo,
		events:           events,
		metrics:          metrics,
		logger:           logger,
		now:              time.Now,
	}
}

// ZipItems pairs the parallel form arrays up to the shortest length. Every row must
// carry a numeric medication id, blank included.
func ZipItems(form *dto.PrescriptionForm) ([]*models.PrescriptionItem, error) {
	n := min(len(form.MedicationIDs), len(form.Dosages), len(form.Frequencies), len(form.Durations))

	items := make([]*models.PrescriptionItem, 0, n)
	for i := 0; i < n; i++ {
		raw := strings.TrimSpace(form.MedicationIDs[i])
		medID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid medication id %q", apperrors.ErrValidationFailed, raw)
		}
		items = append(items, &models.PrescriptionItem{
			MedicationID: medID,
			Dosage:       form.Dosages[i],
			Frequency:    form.Frequencies[i],
			Duration:     helpers.NullString(form.Durations[i]),
		})
	}
	return items, nil
}

// Create stores the prescription with a status decided by the prescriber's role, then
// parses and stores its items in a second step. An item failure, including a bad
// medication id, leaves the parent row in place.
func (s *prescriptionServiceImpl) Create(ctx context.Context, prescriber *appauth.Principal, form *dto.PrescriptionForm) (*models.Prescription, error) {
	patientID, err := strconv.ParseInt(strings.TrimSpace(form.PatientID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id %q", apperrors.ErrValidationFailed, form.PatientID)
	}

	rx := &models.Prescription{
		PatientID:    patientID,
		PrescriberID: prescriber.UserID,
		Status:       models.InitialStatusFor(prescriber.Role),
		Instructions: helpers.NullString(form.Instructions),
	}
	if _, err := s.prescriptionRepo.Create(ctx, rx); err != nil {
		return nil, err
	}
	s.metrics.PrescriptionCreated(string(rx.Status))

	items, err := ZipItems(form)
	if err != nil {
		s.logger.Warn().Err(err).Int64("prescriptionID", rx.ID).Msg("Prescription saved without items")
		return rx, err
	}
	if err := s.prescriptionRepo.AddItems(ctx, rx.ID, items); err != nil {
		s.logger.Error().Err(err).Int64("prescriptionID", rx.ID).Msg("Prescription saved without items")
		return rx, err
	}
	rx.Items = items

	s.logger.Info().
		Int64("prescriptionID", rx.ID).
		Int64("prescriberID", prescriber.UserID).
		Str("status", string(rx.Status)).
		Int("items", len(items)).
		Msg("Prescription created")
	s.publish(dto.EventPrescriptionCreated, rx, prescriber)
	return rx, nil
}

// Approve sets the prescription to approved whatever its current status.
// The teacher check is the route guard's job; the service only re-asserts it.
func (s *prescriptionServiceImpl) Approve(ctx context.Context, approver *appauth.Principal, id int64) (*models.Prescription, error) {
	if err := appauth.ValidateTeacher(approver); err != nil {
		return nil, err
	}

	rx, err := s.prescriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.prescriptionRepo.UpdateStatus(ctx, id, models.StatusApproved); err != nil {
		return nil, err
	}
	previous := rx.Status
	rx.Status = models.StatusApproved
	s.metrics.PrescriptionApproved()

	s.logger.Info().
		Int64("prescriptionID", id).
		Int64("approverID", approver.UserID).
		Str("previousStatus", string(previous)).
		Msg("Prescription approved")
	s.publish(dto.EventPrescriptionApproved, rx, approver)
	return rx, nil
}

// List returns all prescriptions for teachers and only their own for students, newest first
func (s *prescriptionServiceImpl) List(ctx context.Context, viewer *appauth.Principal) ([]*models.Prescription, error) {
	return s.prescriptionRepo.List(ctx, appauth.PrescriptionListScope(viewer))
}

// Get loads a prescription with patient, prescriber and items. No ownership check applies.
func (s *prescriptionServiceImpl) Get(ctx context.Context, id int64) (*models.Prescription, error) {
	rx, err := s.prescriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.prescriptionRepo.GetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading prescription items: %w", err)
	}
	rx.Items = items
	return rx, nil
}

// FormOptions lists patients by last name and medications by name
func (s *prescriptionServiceImpl) FormOptions(ctx context.Context) (*PrescriptionFormOptions, error) {
	patients, err := s.patientRepo.ListByLastName(ctx)
	if err != nil {
		return nil, err
	}
	medications, err := s.medicationRepo.ListByName(ctx)
	if err != nil {
		return nil, err
	}
	return &PrescriptionFormOptions{Patients: patients, Medications: medications}, nil
}

// RenderPDF renders the printable prescription sheet
func (s *prescriptionServiceImpl) RenderPDF(ctx context.Context, id int64) ([]byte, error) {
	rx, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return pdf.RenderPrescription(rx)
}

func (s *prescriptionServiceImpl) publish(eventType string, rx *models.Prescription, actor *appauth.Principal) {
	s.events.Publish(dto.PrescriptionEvent{
		Type:           eventType,
		PrescriptionID: rx.ID,
		PatientID:      rx.PatientID,
		Status:         string(rx.Status),
		ActorID:        actor.UserID,
		ActorName:      actor.Username,
		OccurredAt:     s.now().UTC(),
	})
}
