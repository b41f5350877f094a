package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *MockUserRepository, *MockRevocationStore) {
	t.Helper()
	users := new(MockUserRepository)
	revoked := new(MockRevocationStore)
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "k", SessionTTL: time.Hour, TokenIssuer: "pharmalab"})
	return NewAuthService(users, revoked, jwtSvc, nil, zerolog.Nop()), users, revoked
}

func TestLogin(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	users.On("GetByUsername", mock.Anything, "admin").Return(&models.User{ID: 1, Username: "admin", Password: hash, Role: models.RoleTeacher}, nil)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrUserNotFound)

	sess, user, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, int64(1), user.ID)

	_, _, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, _, revoked := newAuthFixture(t)
	sess, err := svc.jwtService.Issue(3, "stud", "student")
	require.NoError(t, err)

	revoked.On("IsRevoked", mock.Anything, sess.ID).Return(false, nil).Once()
	principal, claims, err := svc.Authenticate(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, principal.Role)
	assert.Equal(t, sess.ID, principal.SessionID)

	revoked.On("Revoke", mock.Anything, sess.ID, mock.AnythingOfType("time.Time")).Return(nil)
	require.NoError(t, svc.Logout(context.Background(), claims))

	revoked.On("IsRevoked", mock.Anything, sess.ID).Return(true, nil)
	_, _, err = svc.Authenticate(context.Background(), sess.Token)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, err := svc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
