package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	m := NewManager("secret", 0, 0)

	token, err := m.IssueAccessToken(42, 0)
	require.NoError(t, err)

	claims, err := m.VerifyType(token, TypeAccess)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.WithinDuration(t, time.Now().Add(DefaultAccessTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)

	token, err := m.IssueRefreshToken(7)
	require.NoError(t, err)

	_, err = m.VerifyType(token, TypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	claims, err := m.VerifyType(token, TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, claims.Type)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.IssueAccessToken(1, time.Minute)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, err := NewManager("one", 0, 0).IssueAccessToken(1, 0)
	require.NoError(t, err)

	_, err = NewManager("two", 0, 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	claims := Claims{Type: TypeAccess, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewManager("secret", 0, 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsUserIDRejectsGarbage(t *testing.T) {
	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
