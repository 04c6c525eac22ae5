package jwt

import (
	"testing"
	"time"

	"iadev-dashboard/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndParseSession(t *testing.T) {
	perms := domain.Capabilities{DeleteMember: true}
	now := time.Now()

	token, expiresAt, err := IssueSession("42", perms, testSecret, 24*time.Hour, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(24*time.Hour), expiresAt, time.Second)

	claims, err := ParseSession(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.ID)
	assert.Equal(t, perms, claims.Permissions)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestParseSessionExpired(t *testing.T) {
	token, _, err := IssueSession("42", domain.Capabilities{}, testSecret, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ParseSession(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseSessionWrongSecret(t *testing.T) {
	token, _, err := IssueSession("42", domain.Capabilities{}, testSecret, time.Hour, time.Now())
	require.NoError(t, err)

	_, err = ParseSession(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseSessionRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		ID: "42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseSession(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseSessionRequiresIdentity(t *testing.T) {
	token, _, err := IssueSession("", domain.Capabilities{}, testSecret, time.Hour, time.Now())
	require.NoError(t, err)

	_, err = ParseSession(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseSessionGarbage(t *testing.T) {
	_, err := ParseSession("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
