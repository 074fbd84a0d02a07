package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Build(Config{Secret: "test-secret-with-enough-entropy", Issuer: "mehndi-service", TTL: time.Hour})
	require.NoError(t, err)
	return m
}

func TestGenerateAndVerify(t *testing.T) {
	m := newManager(t)

	tok, exp, err := m.Generator.Generate("01HZX0000000000000000000AB", "asha", RoleSuperAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verifier.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "01HZX0000000000000000000AB", claims.AdminID)
	assert.Equal(t, "asha", claims.Username)
	assert.Equal(t, RoleSuperAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.False(t, (&Claims{Role: "customer"}).IsAdmin())
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newManager(t)
	m.Generator.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, _, err := m.Generator.Generate("id", "asha", RoleAdmin)
	require.NoError(t, err)

	_, err = m.Verifier.Verify(tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	m := newManager(t)
	other, err := Build(Config{Secret: "another-secret", Issuer: "mehndi-service"})
	require.NoError(t, err)

	tok, _, err := other.Generator.Generate("id", "asha", RoleAdmin)
	require.NoError(t, err)

	_, err = m.Verifier.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	m := newManager(t)
	_, err := m.Verifier.Verify("not.a.token")
	assert.Error(t, err)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	m := newManager(t)
	tok := gojwt.NewWithClaims(gojwt.SigningMethodNone, &Claims{
		AdminID: "id",
		Role:    RoleSuperAdmin,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "mehndi-service",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verifier.Verify(s)
	assert.Error(t, err)
}
