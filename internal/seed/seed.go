package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/pharmalab/internal/app/models"
	appRepos "github.com/yigit/pharmalab/internal/app/repositories"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
)

// CreateDefaultData creates the default teacher account on an empty database
func CreateDefaultData(ctx context.Context, users services.UserService, lgr zerolog.Logger) error {
	created, err := users.EnsureDefaultAdmin(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}
	if !created {
		lgr.Debug().Msg("Users already present, skipping default admin")
	}
	return nil
}

var (
	demoMedications = []struct{ name, generic, strength string }{
		{"Panadol", "Paracetamol", "500mg"},
		{"Amoxil", "Amoxicillin", "250mg"},
		{"Glucophage", "Metformin", "850mg"},
		{"Lipitor", "Atorvastatin", "20mg"},
		{"Zestril", "Lisinopril", "10mg"},
		{"Ventolin", "Salbutamol", "100mcg"},
		{"Nexium", "Esomeprazole", "40mg"},
		{"Brufen", "Ibuprofen", "400mg"},
		{"Coumadin", "Warfarin", "5mg"},
		{"Lasix", "Furosemide", "40mg"},
	}
	dosageForms = []string{"Tablet", "Capsule", "Syrup", "Inhaler", "Injection"}
	bloodTypes  = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	allergies   = []string{"Penicillin", "Sulfa drugs", "Latex", "Peanuts", "None known"}
)

var histories = []string{
	"Type 2 diabetes, diet controlled",
	"Hypertension on ACE inhibitor",
	"Asthma since childhood",
	"Chronic kidney disease stage 3",
	"Atrial fibrillation on anticoagulation",
	"No significant history",
}

// DemoResult counts the rows a demo seed inserted
type DemoResult struct {
	Patients    int
	Medications int
}

// DemoSeeder fills an empty teaching database with fake patients and an inventory
type DemoSeeder struct {
	patients    appRepos.IPatientRepository
	medications appRepos.IMedicationRepository
	faker       *gofakeit.Faker
	logger      zerolog.Logger
}

// NewDemoSeeder creates a seeder. The same seed yields the same data set.
func NewDemoSeeder(patients appRepos.IPatientRepository, medications appRepos.IMedicationRepository, seed uint64, lgr zerolog.Logger) *DemoSeeder {
	return &DemoSeeder{
		patients:    patients,
		medications: medications,
		faker:       gofakeit.New(seed),
		logger:      lgr,
	}
}

// Seed inserts n fake patients and one stock entry per demo medication.
// Duplicate patient ids are skipped rather than treated as failures.
func (s *DemoSeeder) Seed(ctx context.Context, n int) (*DemoResult, error) {
	res := &DemoResult{}
	var finalErr error

	for i := 0; i < n; i++ {
		p := s.fakePatient()
		if _, err := s.patients.Create(ctx, p); err != nil {
			if errors.Is(err, apperrors.ErrPatientIDExists) {
				s.logger.Debug().Str("patientID", p.PatientID).Msg("Demo patient already exists")
				continue
			}
			finalErr = errors.Join(finalErr, err)
			continue
		}
		res.Patients++
	}

	for _, m := range demoMedications {
		if _, err := s.medications.Create(ctx, s.fakeMedication(m.name, m.generic, m.strength)); err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		res.Medications++
	}

	s.logger.Info().Int("patients", res.Patients).Int("medications", res.Medications).Msg("Demo data seeded")
	return res, finalErr
}

func (s *DemoSeeder) fakePatient() *appModels.Patient {
	f := s.faker
	dob := f.DateRange(time.Date(1935, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2015, 12, 31, 0, 0, 0, 0, time.UTC))
	bloodType := f.RandomString(bloodTypes)
	allergy := f.RandomString(allergies)
	history := f.RandomString(histories)

	return &appModels.Patient{
		PatientID:      fmt.Sprintf("P%05d", f.Number(1, 99999)),
		FirstName:      f.FirstName(),
		LastName:       f.LastName(),
		DOB:            time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC),
		Gender:         f.RandomString([]string{"male", "female"}),
		BloodType:      &bloodType,
		Allergies:      &allergy,
		MedicalHistory: &history,
	}
}

func (s *DemoSeeder) fakeMedication(name, generic, strength string) *appModels.Medication {
	f := s.faker
	form := f.RandomString(dosageForms)
	manufacturer := f.Company()
	return &appModels.Medication{
		Name:         name,
		GenericName:  &generic,
		DosageForm:   &form,
		Strength:     &strength,
		Manufacturer: &manufacturer,
		Quantity:     f.Number(0, 200),
		ReorderLevel: appModels.DefaultReorderLevel,
	}
}
