package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/db"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/dberrors"
	"github.com/yigit/pharmalab/internal/pkg/logger"
)

var prescriptionSummaryColumns = []string{
	"rx.id", "rx.patient_id", "rx.prescriber_id", "rx.date_prescribed", "rx.status", "rx.instructions",
	"pt.patient_id", "pt.first_name", "pt.last_name", "u.username", "u.role",
}

// PrescriptionRepository handles prescription and prescription item operations
type PrescriptionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewPrescriptionRepository creates a new PrescriptionRepository
func NewPrescriptionRepository(db DBTX) *PrescriptionRepository {
	return &PrescriptionRepository{db: db, sb: newStatementBuilder()}
}

// wrapReferenceError turns a foreign key violation into ErrUnknownReference
func wrapReferenceError(err error, action string) error {
	if constraint, ok := dberrors.IsForeignKeyError(err); ok {
		return fmt.Errorf("%w (%s)", apperrors.ErrUnknownReference, constraint)
	}
	return fmt.Errorf("error %s: %w", action, err)
}

// Create inserts the parent prescription row
func (r *PrescriptionRepository) Create(ctx context.Context, rx *models.Prescription) (int64, error) {
	insert := r.sb.Insert("prescriptions").
		Columns("patient_id", "prescriber_id", "status", "instructions").
		Values(rx.PatientID, rx.PrescriberID, rx.Status, rx.Instructions).
		Suffix("RETURNING id, date_prescribed")

	sql, args, err := insert.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create prescription SQL")
		return 0, fmt.Errorf("failed to build create prescription query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rx.ID, &rx.DatePrescribed); err != nil {
		logger.Error().Err(err).Int64("patientID", rx.PatientID).Msg("Error executing create prescription query")
		return 0, wrapReferenceError(err, "creating prescription")
	}
	return rx.ID, nil
}

// AddItems inserts all items in one transaction, separate from the parent insert
func (r *PrescriptionRepository) AddItems(ctx context.Context, prescriptionID int64, items []*models.PrescriptionItem) error {
	if len(items) == 0 {
		return nil
	}

	insert := r.sb.Insert("prescription_items").
		Columns("prescription_id", "medication_id", "dosage", "frequency", "duration")
	for _, item := range items {
		insert = insert.Values(prescriptionID, item.MedicationID, item.Dosage, item.Frequency, item.Duration)
	}
	sql, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add items query: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return wrapReferenceError(err, "adding prescription items")
		}
		defer rows.Close()

		i := 0
		for rows.Next() {
			if err := rows.Scan(&items[i].ID); err != nil {
				return fmt.Errorf("error scanning item id: %w", err)
			}
			items[i].PrescriptionID = prescriptionID
			i++
		}
		if err := rows.Err(); err != nil {
			logger.Error().Err(err).Int64("prescriptionID", prescriptionID).Msg("Error inserting prescription items")
			return wrapReferenceError(err, "adding prescription items")
		}
		return nil
	})
}

// UpdateStatus sets the status unconditionally
func (r *PrescriptionRepository) UpdateStatus(ctx context.Context, id int64, status models.PrescriptionStatus) error {
	sql, args, err := r.sb.Update("prescriptions").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("prescriptionID", id).Msg("Error executing update status query")
		return fmt.Errorf("error updating prescription status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPrescriptionNotFound
	}
	return nil
}

func (r *PrescriptionRepository) summaryQuery() squirrel.SelectBuilder {
	return r.sb.Select(prescriptionSummaryColumns...).
		From("prescriptions rx").
		Join("patients pt ON pt.id = rx.patient_id").
		Join("users u ON u.id = rx.prescriber_id")
}

func scanPrescriptionSummary(row pgx.Row) (*models.Prescription, error) {
	rx := &models.Prescription{Patient: &models.Patient{}, Prescriber: &models.User{}}
	err := row.Scan(&rx.ID, &rx.PatientID, &rx.PrescriberID, &rx.DatePrescribed, &rx.Status, &rx.Instructions,
		&rx.Patient.PatientID, &rx.Patient.FirstName, &rx.Patient.LastName,
		&rx.Prescriber.Username, &rx.Prescriber.Role)
	if err != nil {
		return nil, err
	}
	rx.Patient.ID = rx.PatientID
	rx.Prescriber.ID = rx.PrescriberID
	return rx, nil
}

// GetByID retrieves a prescription with its patient and prescriber (items are loaded separately)
func (r *PrescriptionRepository) GetByID(ctx context.Context, id int64) (*models.Prescription, error) {
	sql, args, err := r.summaryQuery().Where(squirrel.Eq{"rx.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get prescription query: %w", err)
	}

	rx, err := scanPrescriptionSummary(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPrescriptionNotFound
		}
		logger.Error().Err(err).Int64("prescriptionID", id).Msg("Error scanning prescription row")
		return nil, fmt.Errorf("error getting prescription by ID: %w", err)
	}
	return rx, nil
}

// GetItems returns the items of a prescription joined with their medications
func (r *PrescriptionRepository) GetItems(ctx context.Context, prescriptionID int64) ([]*models.PrescriptionItem, error) {
	sql, args, err := r.sb.Select(
		"i.id", "i.prescription_id", "i.medication_id", "i.dosage", "i.frequency", "i.duration",
		"m.name", "m.strength", "m.dosage_form").
		From("prescription_items i").
		Join("medications m ON m.id = i.medication_id").
		Where(squirrel.Eq{"i.prescription_id": prescriptionID}).
		OrderBy("i.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("prescriptionID", prescriptionID).Msg("Error executing get items query")
		return nil, fmt.Errorf("error querying prescription items: %w", err)
	}
	defer rows.Close()

	items := []*models.PrescriptionItem{}
	for rows.Next() {
		item := &models.PrescriptionItem{Medication: &models.Medication{}}
		if err := rows.Scan(&item.ID, &item.PrescriptionID, &item.MedicationID, &item.Dosage, &item.Frequency,
			&item.Duration, &item.Medication.Name, &item.Medication.Strength, &item.Medication.DosageForm); err != nil {
			return nil, fmt.Errorf("error scanning prescription item: %w", err)
		}
		item.Medication.ID = item.MedicationID
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prescription items: %w", err)
	}
	return items, nil
}

// List returns prescriptions newest first. A non-nil prescriberID limits the result to that prescriber.
func (r *PrescriptionRepository) List(ctx context.Context, prescriberID *int64) ([]*models.Prescription, error) {
	q := r.summaryQuery()
	if prescriberID != nil {
		q = q.Where(squirrel.Eq{"rx.prescriber_id": *prescriberID})
	}
	return r.list(ctx, q)
}

// ListByPatient returns a patient's prescriptions newest first
func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID int64) ([]*models.Prescription, error) {
	return r.list(ctx, r.summaryQuery().Where(squirrel.Eq{"rx.patient_id": patientID}))
}

func (r *PrescriptionRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Prescription, error) {
	sql, args, err := q.OrderBy("rx.date_prescribed DESC", "rx.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list prescriptions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list prescriptions query")
		return nil, fmt.Errorf("error querying prescriptions: %w", err)
	}
	defer rows.Close()

	list := []*models.Prescription{}
	for rows.Next() {
		rx, err := scanPrescriptionSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning prescription row: %w", err)
		}
		list = append(list, rx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prescription rows: %w", err)
	}
	return list, nil
}

// CountByStatus counts prescriptions in the given status
func (r *PrescriptionRepository) CountByStatus(ctx context.Context, status models.PrescriptionStatus) (int64, error) {
	n, err := countRows(ctx, r.db, r.sb.Select("COUNT(*)").From("prescriptions").Where(squirrel.Eq{"status": status}))
	if err != nil {
		return 0, fmt.Errorf("error counting prescriptions: %w", err)
	}
	return n, nil
}
