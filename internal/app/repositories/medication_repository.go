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
	"github.com/yigit/pharmalab/internal/pkg/logger"
)

var medicationColumns = []string{
	"id", "name", "generic_name", "dosage_form", "strength", "manufacturer",
	"quantity", "reorder_level", "indications", "contraindications", "side_effects",
}

var lowStock = squirrel.Expr("quantity <= reorder_level")

// MedicationRepository handles medication database operations
type MedicationRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewMedicationRepository creates a new MedicationRepository
func NewMedicationRepository(db DBTX) *MedicationRepository {
	return &MedicationRepository{db: db, sb: newStatementBuilder()}
}

func scanMedication(row pgx.Row) (*models.Medication, error) {
	m := &models.Medication{}
	err := row.Scan(&m.ID, &m.Name, &m.GenericName, &m.DosageForm, &m.Strength, &m.Manufacturer,
		&m.Quantity, &m.ReorderLevel, &m.Indications, &m.Contraindications, &m.SideEffects)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a medication and returns its id
func (r *MedicationRepository) Create(ctx context.Context, med *models.Medication) (int64, error) {
	sql, args, err := r.sb.Insert("medications").
		Columns("name", "generic_name", "dosage_form", "strength", "manufacturer",
			"quantity", "reorder_level", "indications", "contraindications", "side_effects").
		Values(med.Name, med.GenericName, med.DosageForm, med.Strength, med.Manufacturer,
			med.Quantity, med.ReorderLevel, med.Indications, med.Contraindications, med.SideEffects).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create medication SQL")
		return 0, fmt.Errorf("failed to build create medication query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", med.Name).Msg("Error executing create medication query")
		return 0, fmt.Errorf("error creating medication: %w", err)
	}
	return id, nil
}

// GetByID retrieves a medication by id
func (r *MedicationRepository) GetByID(ctx context.Context, id int64) (*models.Medication, error) {
	sql, args, err := r.sb.Select(medicationColumns...).From("medications").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get medication query: %w", err)
	}

	med, err := scanMedication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMedicationNotFound
		}
		logger.Error().Err(err).Int64("medicationID", id).Msg("Error scanning medication row")
		return nil, fmt.Errorf("error getting medication by ID: %w", err)
	}
	return med, nil
}

// ListByName returns all medications ordered by name
func (r *MedicationRepository) ListByName(ctx context.Context) ([]*models.Medication, error) {
	return r.list(ctx, r.sb.Select(medicationColumns...).From("medications").OrderBy("name ASC"))
}

// ListLowStock returns medications whose quantity is at or below their reorder level
func (r *MedicationRepository) ListLowStock(ctx context.Context) ([]*models.Medication, error) {
	return r.list(ctx, r.sb.Select(medicationColumns...).From("medications").Where(lowStock).OrderBy("name ASC"))
}

func (r *MedicationRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Medication, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list medications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list medications query")
		return nil, fmt.Errorf("error querying medications: %w", err)
	}
	defer rows.Close()

	meds := []*models.Medication{}
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning medication row: %w", err)
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medication rows: %w", err)
	}
	return meds, nil
}

// Count returns the number of medications
func (r *MedicationRepository) Count(ctx context.Context) (int64, error) {
	n, err := countRows(ctx, r.db, r.sb.Select("COUNT(*)").From("medications"))
	if err != nil {
		return 0, fmt.Errorf("error counting medications: %w", err)
	}
	return n, nil
}

// CountLowStock returns the number of low-stock medications
func (r *MedicationRepository) CountLowStock(ctx context.Context) (int64, error) {
	n, err := countRows(ctx, r.db, r.sb.Select("COUNT(*)").From("medications").Where(lowStock))
	if err != nil {
		return 0, fmt.Errorf("error counting low stock medications: %w", err)
	}
	return n, nil
}

// CountByDosageForm groups medications by dosage form
func (r *MedicationRepository) CountByDosageForm(ctx context.Context) ([]dto.CategoryCount, error) {
	return groupCount(ctx, r.db, r.sb.Select("dosage_form", "COUNT(*)").From("medications").GroupBy("dosage_form").OrderBy("dosage_form"))
}
