package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Generate(Claims{
		Email:    "a@x.com",
		UserID:   "user-1",
		Username: "alice",
		Age:      30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, 30, claims.Age)
}

func TestParseLoginClaimsWithoutProfileFields(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, _, err := m.Generate(Claims{Email: "a@x.com", UserID: "user-1"})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Empty(t, claims.Username)
	assert.Zero(t, claims.Age)
}

// signedWithExpiry builds a token with the manager's secret but an explicit
// expiry, standing in for a token issued in the past.
func signedWithExpiry(t *testing.T, m *JWTManager, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		Email:  "a@x.com",
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(expiresIn - time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	require.NoError(t, err)
	return s
}

func TestParseExpiryBoundary(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	// Issued 59 minutes ago with a 1h TTL: still valid.
	fresh := signedWithExpiry(t, m, time.Minute)
	_, err := m.Parse(fresh)
	assert.NoError(t, err)

	// Issued 61 minutes ago: expired, full re-login required.
	stale := signedWithExpiry(t, m, -time.Minute)
	_, err = m.Parse(stale)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, _, err := other.Generate(Claims{Email: "a@x.com", UserID: "user-1"})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	claims := &Claims{
		Email:  "a@x.com",
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(unsigned)
	assert.Error(t, err)
}
