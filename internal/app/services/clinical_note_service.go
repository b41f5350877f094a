package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/repositories"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/helpers"
)

// ClinicalNoteService defines note operations
type ClinicalNoteService interface {
	Add(ctx context.Context, author *appauth.Principal, patientID int64, form *dto.ClinicalNoteForm) (*models.ClinicalNote, error)
}

type clinicalNoteServiceImpl struct {
	noteRepo repositories.IClinicalNoteRepository
	logger   zerolog.Logger
}

// NewClinicalNoteService creates a new ClinicalNoteService
func NewClinicalNoteService(noteRepo repositories.IClinicalNoteRepository, logger zerolog.Logger) ClinicalNoteService {
	return &clinicalNoteServiceImpl{noteRepo: noteRepo, logger: logger}
}

// Add stores a note authored by the current user
func (s *clinicalNoteServiceImpl) Add(ctx context.Context, author *appauth.Principal, patientID int64, form *dto.ClinicalNoteForm) (*models.ClinicalNote, error) {
	content := strings.TrimSpace(form.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", apperrors.ErrValidationFailed)
	}

	note := &models.ClinicalNote{
		PatientID: patientID,
		AuthorID:  author.UserID,
		NoteType:  helpers.NullString(form.NoteType),
		Content:   content,
	}
	if _, err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("patientID", patientID).Int64("authorID", author.UserID).Msg("Clinical note added")
	return note, nil
}
