package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/repositories"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
	"github.com/yigit/pharmalab/internal/pkg/session"
)

// AuthService handles login, logout and session validation
type AuthService struct {
	userRepo   repositories.IUserRepository
	revoked    session.RevocationStore
	jwtService *auth.JWTService
	metrics    LoginMetrics
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService. metrics may be nil.
func NewAuthService(
	userRepo repositories.IUserRepository,
	revoked session.RevocationStore,
	jwtService *auth.JWTService,
	metrics LoginMetrics,
	logger zerolog.Logger,
) *AuthService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &AuthService{
		userRepo:   userRepo,
		revoked:    revoked,
		jwtService: jwtService,
		metrics:    metrics,
		logger:     logger,
	}
}

// Login verifies the credentials and issues a session token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*auth.Session, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.metrics.LoginAttempt(false)
			s.logger.Info().Str("username", username).Msg("Login failed: unknown user")
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		s.metrics.LoginAttempt(false)
		s.logger.Info().Str("username", username).Msg("Login failed: wrong password")
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	sess, err := s.jwtService.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, nil, err
	}

	s.metrics.LoginAttempt(true)
	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return sess, user, nil
}

// Authenticate validates a session token and rejects revoked sessions
func (s *AuthService) Authenticate(ctx context.Context, token string) (*appauth.Principal, *auth.Claims, error) {
	claims, err := s.jwtService.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, nil, apperrors.ErrTokenExpired
		}
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("error checking session: %w", err)
	}
	if revoked {
		return nil, nil, apperrors.ErrTokenRevoked
	}

	role := models.RoleType(claims.Role)
	if !role.IsValid() {
		return nil, nil, fmt.Errorf("%w: role %q", apperrors.ErrTokenInvalid, claims.Role)
	}

	return &appauth.Principal{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      role,
		SessionID: claims.ID,
	}, claims, nil
}

// Logout revokes the session until its natural expiry
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", claims.UserID).Msg("User logged out")
	return nil
}

// SessionTTLRemaining returns how long the session cookie should live
func SessionTTLRemaining(sess *auth.Session) int {
	return int(time.Until(sess.ExpiresAt).Seconds())
}
