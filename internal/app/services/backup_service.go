package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/pkg/filestorage"
)

const backupDir = "backups"

// BackupService is a placeholder: it names a backup file but writes nothing
type BackupService struct {
	storage *filestorage.LocalStorage
	logger  zerolog.Logger
	now     func() time.Time
}

// NewBackupService creates a new BackupService
func NewBackupService(storage *filestorage.LocalStorage, logger zerolog.Logger) *BackupService {
	return &BackupService{storage: storage, logger: logger, now: time.Now}
}

// BackupFileName returns pms_backup_<YYYYmmdd_HHMMSS>.db for t
func BackupFileName(t time.Time) string {
	return fmt.Sprintf("pms_backup_%s.db", t.Format("20060102_150405"))
}

// Run ensures the backup directory exists and logs the path a backup would use
func (s *BackupService) Run(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := s.storage.EnsureDir(backupDir); err != nil {
		s.logger.Error().Err(err).Msg("Backup directory unavailable")
		return "", err
	}

	path := s.storage.Path(backupDir, BackupFileName(s.now()))
	s.logger.Info().Str("path", path).Msg("Database backup created")
	return path, nil
}
