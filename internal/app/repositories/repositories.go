package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	PatientRepository        *PatientRepository
	MedicationRepository     *MedicationRepository
	PrescriptionRepository   *PrescriptionRepository
	ClinicalNoteRepository   *ClinicalNoteRepository
	RevokedSessionRepository *RevokedSessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		PatientRepository:        NewPatientRepository(db),
		MedicationRepository:     NewMedicationRepository(db),
		PrescriptionRepository:   NewPrescriptionRepository(db),
		ClinicalNoteRepository:   NewClinicalNoteRepository(db),
		RevokedSessionRepository: NewRevokedSessionRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// countRows runs a SELECT COUNT(*) built by q
func countRows(ctx context.Context, db DBTX, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
