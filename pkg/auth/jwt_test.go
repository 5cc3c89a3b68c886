package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	return NewManager("test-secret-key-for-unit-testing", 15*time.Minute, 24*time.Hour, "careerhub")
}

func TestGenerateAndParsePair(t *testing.T) {
	m := newTestManager()

	access, refresh, err := m.GeneratePair(42, "faculty")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := m.ParseAccessToken(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "faculty", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "careerhub", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := m.ParseRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestParseAccessToken_RejectsRefreshToken(t *testing.T) {
	m := newTestManager()

	_, refresh, err := m.GeneratePair(1, "student")
	assert.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	m := newTestManager()

	access, _, err := m.GeneratePair(1, "student")
	assert.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("a-different-secret", 15*time.Minute, 24*time.Hour, "careerhub")

	access, _, err := m.GeneratePair(1, "alumni")
	assert.NoError(t, err)

	_, err = other.ParseToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Millisecond, time.Millisecond, "careerhub")

	access, _, err := m.GeneratePair(1, "student")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = m.ParseToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}
