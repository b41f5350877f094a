package repositories

import (
	"context"
	"time"

	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
)

// IUserRepository defines the user operations the services depend on
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// IPatientRepository defines patient persistence
type IPatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	ListByLastName(ctx context.Context) ([]*models.Patient, error)
	Count(ctx context.Context) (int64, error)
	CountByGender(ctx context.Context) ([]dto.CategoryCount, error)
}

// IMedicationRepository defines medication persistence
type IMedicationRepository interface {
	Create(ctx context.Context, medication *models.Medication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Medication, error)
	ListByName(ctx context.Context) ([]*models.Medication, error)
	ListLowStock(ctx context.Context) ([]*models.Medication, error)
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountByDosageForm(ctx context.Context) ([]dto.CategoryCount, error)
}

// IPrescriptionRepository defines prescription persistence
type IPrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) (int64, error)
	AddItems(ctx context.Context, prescriptionID int64, items []*models.PrescriptionItem) error
	GetByID(ctx context.Context, id int64) (*models.Prescription, error)
	GetItems(ctx context.Context, prescriptionID int64) ([]*models.PrescriptionItem, error)
	UpdateStatus(ctx context.Context, id int64, status models.PrescriptionStatus) error
	List(ctx context.Context, prescriberID *int64) ([]*models.Prescription, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*models.Prescription, error)
	CountByStatus(ctx context.Context, status models.PrescriptionStatus) (int64, error)
}

// IClinicalNoteRepository defines clinical note persistence
type IClinicalNoteRepository interface {
	Create(ctx context.Context, note *models.ClinicalNote) (int64, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*models.ClinicalNote, error)
}

// IRevokedSessionRepository is the Postgres fallback for session revocation
type IRevokedSessionRepository interface {
	Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

var (
	_ IUserRepository           = (*UserRepository)(nil)
	_ IPatientRepository        = (*PatientRepository)(nil)
	_ IMedicationRepository     = (*MedicationRepository)(nil)
	_ IPrescriptionRepository   = (*PrescriptionRepository)(nil)
	_ IClinicalNoteRepository   = (*ClinicalNoteRepository)(nil)
	_ IRevokedSessionRepository = (*RevokedSessionRepository)(nil)
)
