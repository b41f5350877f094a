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

// MedicationService defines medication operations
type MedicationService interface {
	List(ctx context.Context) (all []*models.Medication, lowStock []*models.Medication, err error)
	Add(ctx context.Context, form *dto.MedicationForm) (*models.Medication, error)
}

type medicationServiceImpl struct {
	medicationRepo repositories.IMedicationRepository
	logger         zerolog.Logger
}

// NewMedicationService creates a new MedicationService
func NewMedicationService(medicationRepo repositories.IMedicationRepository, logger zerolog.Logger) MedicationService {
	return &medicationServiceImpl{medicationRepo: medicationRepo, logger: logger}
}

// List returns every medication ordered by name together with the low-stock subset
func (s *medicationServiceImpl) List(ctx context.Context) ([]*models.Medication, []*models.Medication, error) {
	all, err := s.medicationRepo.ListByName(ctx)
	if err != nil {
		return nil, nil, err
	}

	low := make([]*models.Medication, 0)
	for _, m := range all {
		if m.IsLowStock() {
			low = append(low, m)
		}
	}
	return all, low, nil
}

// Add parses the integer fields and stores the medication
func (s *medicationServiceImpl) Add(ctx context.Context, form *dto.MedicationForm) (*models.Medication, error) {
	quantity, err := helpers.ParseInt("quantity", form.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	reorder, err := helpers.ParseInt("reorder_level", form.ReorderLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	med := &models.Medication{
		Name:              strings.TrimSpace(form.Name),
		GenericName:       helpers.NullString(form.GenericName),
		DosageForm:        helpers.NullString(form.DosageForm),
		Strength:          helpers.NullString(form.Strength),
		Manufacturer:      helpers.NullString(form.Manufacturer),
		Quantity:          quantity,
		ReorderLevel:      reorder,
		Indications:       helpers.NullString(form.Indications),
		Contraindications: helpers.NullString(form.Contraindications),
		SideEffects:       helpers.NullString(form.SideEffects),
	}

	id, err := s.medicationRepo.Create(ctx, med)
	if err != nil {
		return nil, err
	}
	med.ID = id

	s.logger.Info().Int64("id", id).Str("name", med.Name).Msg("Medication added")
	return med, nil
}
