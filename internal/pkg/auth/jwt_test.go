package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "test-secret", SessionTTL: time.Hour, TokenIssuer: "pharmalab"})
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService()

	sess, err := svc.Issue(7, "admin", "teacher")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)

	claims, err := svc.Validate(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, sess.ID, claims.ID)
}

func TestValidate_Expired(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Issue(1, "s", "student")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Validate(sess.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	sess, err := newTestService().Issue(1, "s", "student")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", SessionTTL: time.Hour, TokenIssuer: "pharmalab"})
	_, err = other.Validate(sess.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = other.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}
