package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/dberrors"
	"github.com/yigit/pharmalab/internal/pkg/logger"
)

var patientColumns = []string{
	"id", "patient_id", "first_name", "last_name", "dob", "gender",
	"blood_type", "allergies", "medical_history", "created_at", "updated_at",
}

// PatientRepository handles patient database operations
type PatientRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(db DBTX) *PatientRepository {
	return &PatientRepository{db: db, sb: newStatementBuilder()}
}

func scanPatient(row pgx.Row) (*models.Patient, error) {
	p := &models.Patient{}
	err := row.Scan(&p.ID, &p.PatientID, &p.FirstName, &p.LastName, &p.DOB, &p.Gender,
		&p.BloodType, &p.Allergies, &p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a patient and returns its id
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	sql, args, err := r.sb.Insert("patients").
		Columns("patient_id", "first_name", "last_name", "dob", "gender", "blood_type", "allergies", "medical_history").
		Values(patient.PatientID, patient.FirstName, patient.LastName, patient.DOB, patient.Gender,
			patient.BloodType, patient.Allergies, patient.MedicalHistory).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create patient SQL")
		return 0, fmt.Errorf("failed to build create patient query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "patients_patient_id_key") {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrPatientIDExists, patient.PatientID)
		}
		logger.Error().Err(err).Str("patientID", patient.PatientID).Msg("Error executing create patient query")
		return 0, fmt.Errorf("error creating patient: %w", err)
	}
	return id, nil
}

// GetByID retrieves a patient by primary key
func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	sql, args, err := r.sb.Select(patientColumns...).From("patients").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get patient query: %w", err)
	}

	patient, err := scanPatient(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPatientNotFound
		}
		logger.Error().Err(err).Int64("patientID", id).Msg("Error scanning patient row")
		return nil, fmt.Errorf("error getting patient by ID: %w", err)
	}
	return patient, nil
}

// ListByLastName returns every patient ordered by last name
func (r *PatientRepository) ListByLastName(ctx context.Context) ([]*models.Patient, error) {
	sql, args, err := r.sb.Select(patientColumns...).From("patients").OrderBy("last_name ASC", "first_name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list patients query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list patients query")
		return nil, fmt.Errorf("error querying patients: %w", err)
	}
	defer rows.Close()

	patients := []*models.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", err)
	}
	return patients, nil
}

// Count returns the number of patients
func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	n, err := countRows(ctx, r.db, r.sb.Select("COUNT(*)").From("patients"))
	if err != nil {
		return 0, fmt.Errorf("error counting patients: %w", err)
	}
	return n, nil
}

// CountByGender groups patients by gender
func (r *PatientRepository) CountByGender(ctx context.Context) ([]dto.CategoryCount, error) {
	return groupCount(ctx, r.db, r.sb.Select("gender", "COUNT(*)").From("patients").GroupBy("gender").OrderBy("gender"))
}

// groupCount scans (label, count) rows. NULL labels become "Unknown".
func groupCount(ctx context.Context, db DBTX, q squirrel.SelectBuilder) ([]dto.CategoryCount, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group count query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying group counts: %w", err)
	}
	defer rows.Close()

	counts := []dto.CategoryCount{}
	for rows.Next() {
		var label *string
		var n int64
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("error scanning group count: %w", err)
		}
		name := "Unknown"
		if label != nil && *label != "" {
			name = *label
		}
		counts = append(counts, dto.CategoryCount{Label: name, Count: n})
	}
	return counts, rows.Err()
}
