package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken()
	require.NoError(t, err)
	require.Len(t, tok, 64) // 32 random bytes hex-encoded

	other, err := NewSessionToken()
	require.NoError(t, err)
	require.NotEqual(t, tok, other)
}

func TestHashSessionToken(t *testing.T) {
	t.Parallel()

	h := HashSessionToken("abc")
	require.Len(t, h, 64) // sha256 hex
	require.Equal(t, h, HashSessionToken("abc"))
	require.NotEqual(t, h, HashSessionToken("abd"))
	require.NotEqual(t, "abc", h)
}
