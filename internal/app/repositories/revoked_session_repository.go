package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/pharmalab/internal/pkg/logger"
)

// RevokedSessionRepository stores logged-out session ids when Redis is not configured
type RevokedSessionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewRevokedSessionRepository creates a new RevokedSessionRepository
func NewRevokedSessionRepository(db DBTX) *RevokedSessionRepository {
	return &RevokedSessionRepository{db: db, sb: newStatementBuilder()}
}

// Revoke records the session id; revoking twice is a no-op
func (r *RevokedSessionRepository) Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("revoked_sessions").
		Columns("session_id", "expires_at").
		Values(sessionID, expiresAt).
		Suffix("ON CONFLICT (session_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("sessionID", sessionID).Msg("Error revoking session")
		return fmt.Errorf("error revoking session: %w", err)
	}
	return nil
}

// IsRevoked reports whether an unexpired revocation exists for the id
func (r *RevokedSessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("revoked_sessions").
		Where(squirrel.Eq{"session_id": sessionID}).
		Where("expires_at > NOW()").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build is revoked query: %w", err)
	}

	var revoked bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&revoked); err != nil {
		return false, fmt.Errorf("error checking session revocation: %w", err)
	}
	return revoked, nil
}

// PurgeExpired deletes revocations whose token has expired anyway
func (r *RevokedSessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Delete("revoked_sessions").Where("expires_at <= NOW()").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error purging revoked sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
