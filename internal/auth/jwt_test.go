package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate(42, PurposeAccess, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token, PurposeAccess)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, PurposeAccess, claims.Purpose)
	require.Equal(t, "42", claims.Subject)
	require.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsWrongPurpose(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate(1, PurposeResetPassword, time.Hour)
	require.NoError(t, err)

	_, err = m.Verify(token, PurposeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)

	claims, err := m.Verify(token, PurposeResetPassword)
	require.NoError(t, err)
	require.Equal(t, uint64(1), claims.UserID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewManager("test-secret")
	other := NewManager("other-secret")

	token, err := m.Generate(1, PurposeAccess, time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(token, PurposeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate(1, PurposeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(token, PurposeAccess)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.Verify("not-a-token", PurposeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIDsAreUnique(t *testing.T) {
	m := NewManager("test-secret")

	first, err := m.Generate(1, PurposeResetPassword, time.Hour)
	require.NoError(t, err)
	second, err := m.Generate(1, PurposeResetPassword, time.Hour)
	require.NoError(t, err)

	a, err := m.Verify(first, PurposeResetPassword)
	require.NoError(t, err)
	b, err := m.Verify(second, PurposeResetPassword)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}
