package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecrypt(t *testing.T) {
	sealed, err := Encrypt([]byte("abc123"), []byte(testKey))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "abc123")

	plain, err := Decrypt(sealed, []byte(testKey))
	require.NoError(t, err)
	assert.Equal(t, "abc123", plain)
}

func TestDecryptWrongKey(t *testing.T) {
	sealed, err := Encrypt([]byte("abc123"), []byte(testKey))
	require.NoError(t, err)

	_, err = Decrypt(sealed, []byte("fedcba9876543210fedcba9876543210"))
	assert.Error(t, err)

	_, err = Decrypt("AA", []byte(testKey))
	assert.Error(t, err)
}

func TestSessionToken(t *testing.T) {
	signed, err := GenerateSessionToken(testKey, "sid-1", "sealed")
	require.NoError(t, err)

	claims, err := ValidateSessionToken(testKey, signed)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "sealed", claims.Token)

	_, err = ValidateSessionToken("another-secret-another-secret-32", signed)
	assert.Error(t, err)
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID(16)
	require.NoError(t, err)
	b, err := GenerateSessionID(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 22)
}
