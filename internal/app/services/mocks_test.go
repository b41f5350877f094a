package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPatientRepository struct{ mock.Mock }

func (m *MockPatientRepository) Create(ctx context.Context, p *models.Patient) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) ListByLastName(ctx context.Context) ([]*models.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) CountByGender(ctx context.Context) ([]dto.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoryCount), args.Error(1)
}

type MockMedicationRepository struct{ mock.Mock }

func (m *MockMedicationRepository) Create(ctx context.Context, med *models.Medication) (int64, error) {
	args := m.Called(ctx, med)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMedicationRepository) GetByID(ctx context.Context, id int64) (*models.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) ListByName(ctx context.Context) ([]*models.Medication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) ListLowStock(ctx context.Context) ([]*models.Medication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMedicationRepository) CountLowStock(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMedicationRepository) CountByDosageForm(ctx context.Context) ([]dto.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoryCount), args.Error(1)
}

type MockPrescriptionRepository struct{ mock.Mock }

func (m *MockPrescriptionRepository) Create(ctx context.Context, rx *models.Prescription) (int64, error) {
	args := m.Called(ctx, rx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPrescriptionRepository) AddItems(ctx context.Context, prescriptionID int64, items []*models.PrescriptionItem) error {
	args := m.Called(ctx, prescriptionID, items)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) GetByID(ctx context.Context, id int64) (*models.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) GetItems(ctx context.Context, prescriptionID int64) ([]*models.PrescriptionItem, error) {
	args := m.Called(ctx, prescriptionID)
	return args.Get(0).([]*models.PrescriptionItem), args.Error(1)
}

func (m *MockPrescriptionRepository) UpdateStatus(ctx context.Context, id int64, status models.PrescriptionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) List(ctx context.Context, prescriberID *int64) ([]*models.Prescription, error) {
	args := m.Called(ctx, prescriberID)
	return args.Get(0).([]*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) ListByPatient(ctx context.Context, patientID int64) ([]*models.Prescription, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) CountByStatus(ctx context.Context, status models.PrescriptionStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockClinicalNoteRepository struct{ mock.Mock }

func (m *MockClinicalNoteRepository) Create(ctx context.Context, note *models.ClinicalNote) (int64, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClinicalNoteRepository) ListByPatient(ctx context.Context, patientID int64) ([]*models.ClinicalNote, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]*models.ClinicalNote), args.Error(1)
}

type MockRevocationStore struct{ mock.Mock }

func (m *MockRevocationStore) Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error {
	args := m.Called(ctx, sessionID, expiresAt)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

type MockBackupper struct{ mock.Mock }

func (m *MockBackupper) Run(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	events []interface{}
}

func (p *recordingPublisher) Publish(v interface{}) {
	p.events = append(p.events, v)
}
