package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/logger"
)

// ClinicalNoteRepository handles clinical note database operations
type ClinicalNoteRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewClinicalNoteRepository creates a new ClinicalNoteRepository
func NewClinicalNoteRepository(db DBTX) *ClinicalNoteRepository {
	return &ClinicalNoteRepository{db: db, sb: newStatementBuilder()}
}

// Create inserts a note and returns its id
func (r *ClinicalNoteRepository) Create(ctx context.Context, note *models.ClinicalNote) (int64, error) {
	sql, args, err := r.sb.Insert("clinical_notes").
		Columns("patient_id", "author_id", "note_type", "content").
		Values(note.PatientID, note.AuthorID, note.NoteType, note.Content).
		Suffix("RETURNING id, date").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create note query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&note.ID, &note.Date); err != nil {
		logger.Error().Err(err).Int64("patientID", note.PatientID).Msg("Error executing create note query")
		return 0, wrapReferenceError(err, "creating clinical note")
	}
	return note.ID, nil
}

// ListByPatient returns the patient's notes newest first, with author usernames
func (r *ClinicalNoteRepository) ListByPatient(ctx context.Context, patientID int64) ([]*models.ClinicalNote, error) {
	sql, args, err := r.sb.Select("n.id", "n.patient_id", "n.author_id", "n.date", "n.note_type", "n.content", "u.username").
		From("clinical_notes n").
		Join("users u ON u.id = n.author_id").
		Where(squirrel.Eq{"n.patient_id": patientID}).
		OrderBy("n.date DESC", "n.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("patientID", patientID).Msg("Error executing list notes query")
		return nil, fmt.Errorf("error querying clinical notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.ClinicalNote{}
	for rows.Next() {
		n := &models.ClinicalNote{Author: &models.User{}}
		if err := rows.Scan(&n.ID, &n.PatientID, &n.AuthorID, &n.Date, &n.NoteType, &n.Content, &n.Author.Username); err != nil {
			return nil, fmt.Errorf("error scanning clinical note: %w", err)
		}
		n.Author.ID = n.AuthorID
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clinical notes: %w", err)
	}
	return notes, nil
}
