package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/repositories"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
)

// Default account created on an empty database
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// UserService defines account management operations
type UserService interface {
	Create(ctx context.Context, username, password string, role models.RoleType) (*models.User, error)
	EnsureDefaultAdmin(ctx context.Context) (bool, error)
}

type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// Create hashes the password and stores a new account
func (s *userServiceImpl) Create(ctx context.Context, username, password string, role models.RoleType) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Password: hash, Role: role}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("username", username).Str("role", string(role)).Msg("User created")
	return user, nil
}

// EnsureDefaultAdmin creates admin/admin123 as a teacher when no user exists
func (s *userServiceImpl) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.Create(ctx, DefaultAdminUsername, DefaultAdminPassword, models.RoleTeacher); err != nil {
		return false, fmt.Errorf("error creating default admin: %w", err)
	}
	s.logger.Warn().Msg("Created default teacher account admin/admin123; change its password")
	return true, nil
}
